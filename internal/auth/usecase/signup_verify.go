package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

type VerifySignupInput struct {
	OTP string `validate:"required,len=6,number"`
}

// VerifySignup completes the passwordless signup flow. A successful code
// consumption creates the passwordless account and clears the challenge;
// it does not authenticate the session — the caller must log in explicitly.
func (s *Usecase) VerifySignup(ctx context.Context, in VerifySignupInput) error {
	ctx, span := s.startSpan(ctx, "VerifySignup")
	defer span.End()

	if err := s.valid.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	token, state, err := s.loadSession(ctx)
	if err != nil {
		return err
	}
	if state.Pending == nil || state.Pending.Kind != session.KindSignup {
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
		// challenge stays intact so the caller can retry with a fresh code
		return goerror.NewBusiness("invalid or expired OTP", goerror.CodeInvalidInput)
	}

	account := entity.Account{
		ID:        s.uid.Generate(),
		Username:  state.Pending.Username,
		Email:     state.Pending.Email,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Username or email already taken", goerror.CodeDuplicate)
		}
		slog.ErrorContext(ctx, "failed to repo create account", "username", account.Username, "error", err)
		return goerror.NewServer(err)
	}

	state.Pending = nil

	return s.saveSession(ctx, token, state)
}
