package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

type SignupInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
}

// Signup starts the passwordless signup flow: it rejects taken usernames and
// emails before any code is issued, then issues and delivers a code and
// stores the pending challenge in the session.
func (s *Usecase) Signup(ctx context.Context, in SignupInput) error {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.valid.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetAccountByUsernameOrEmail(ctx, in.Username, in.Email)
	if err == nil {
		return goerror.NewBusiness("Username or email already taken", goerror.CodeDuplicate)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account", "username", in.Username, "error", err)
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
		Kind:     session.KindSignup,
		Username: in.Username,
		Email:    in.Email,
	}

	return s.saveSession(ctx, token, state)
}
