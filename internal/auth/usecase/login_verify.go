package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

type VerifyLoginInput struct {
	OTP string `validate:"required,len=6,number"`
}

// VerifyLogin completes the passwordless login flow and authenticates the
// session on success.
func (s *Usecase) VerifyLogin(ctx context.Context, in VerifyLoginInput) error {
	ctx, span := s.startSpan(ctx, "VerifyLogin")
	defer span.End()

	if err := s.valid.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	token, state, err := s.loadSession(ctx)
	if err != nil {
		return err
	}
	if state.Pending == nil || state.Pending.Kind != session.KindLogin {
		return goerror.NewBusiness("session expired, start over", goerror.CodeInvalidInput)
	}

	verdict, err := s.repoDB.ConsumeLatestCode(ctx, state.Pending.Email, in.OTP, s.clock.Now())
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("invalid or expired OTP", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo consume code", "email", state.Pending.Email, "error", err)
		return goerror.NewServer(err)
	}
	if verdict != entity.VerdictOK {
		return goerror.NewBusiness("invalid or expired OTP", goerror.CodeInvalidInput)
	}

	account, err := s.repoDB.GetAccountByEmail(ctx, state.Pending.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("email not registered", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", state.Pending.Email, "error", err)
		return goerror.NewServer(err)
	}

	state.Pending = nil
	state.Auth = &session.Auth{
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
	}

	return s.saveSession(ctx, token, state)
}
