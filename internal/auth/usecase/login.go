package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

type LoginInput struct {
	Email string `validate:"required,email"`
}

// Login starts the passwordless login flow for an existing account.
func (s *Usecase) Login(ctx context.Context, in LoginInput) error {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.valid.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("email not registered", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.issueAndSend(ctx, in.Email); err != nil {
		return err
	}

	token, state, err := s.loadSession(ctx)
	if err != nil {
		return err
	}

	state.Pending = &session.Pending{
		Kind:  session.KindLogin,
		Email: in.Email,
	}

	return s.saveSession(ctx, token, state)
}
