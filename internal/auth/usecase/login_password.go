package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

type LoginPasswordInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginPassword authenticates the session with an email and password. An
// account created through the passwordless flow carries no hash and can
// never pass the compare.
func (s *Usecase) LoginPassword(ctx context.Context, in LoginPasswordInput) error {
	ctx, span := s.startSpan(ctx, "LoginPassword")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.valid.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	account, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if account.Passwordless() || !s.bcrypt.Verify(account.PasswordHash, in.Password) {
		slog.WarnContext(ctx, "password does not match", "account_id", account.ID)
		return goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}

	token, state, err := s.loadSession(ctx)
	if err != nil {
		return err
	}

	state.Pending = nil
	state.Auth = &session.Auth{
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
	}

	return s.saveSession(ctx, token, state)
}
