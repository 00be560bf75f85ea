package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
)

type DeleteInput struct {
	ID int64 `validate:"required"`
}

// Delete removes one of the session account's records by id.
func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	err = s.repoDB.DeleteRegistration(ctx, auth.AccountID, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete registration", "account_id", auth.AccountID, "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
