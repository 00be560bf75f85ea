package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
)

type SignupPasswordInput struct {
	Username        string `validate:"required,username"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,password"`
	ConfirmPassword string `validate:"required"`
}

// SignupPassword creates an account synchronously with a bcrypt hash. No
// code is issued and no session is established.
func (s *Usecase) SignupPassword(ctx context.Context, in SignupPasswordInput) error {
	ctx, span := s.startSpan(ctx, "SignupPassword")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.valid.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.Password != in.ConfirmPassword {
		return goerror.NewInvalidInput(nil, "confirm_password", "passwords do not match")
	}

	_, err := s.repoDB.GetAccountByUsernameOrEmail(ctx, in.Username, in.Email)
	if err == nil {
		return goerror.NewBusiness("Username or email already taken", goerror.CodeDuplicate)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account", "username", in.Username, "error", err)
		return goerror.NewServer(err)
	}

	hashed, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	account := entity.Account{
		ID:           s.uid.Generate(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repoDB.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Username or email already taken", goerror.CodeDuplicate)
		}
		slog.ErrorContext(ctx, "failed to repo create account", "username", account.Username, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
