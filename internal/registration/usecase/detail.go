package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

type DetailInput struct {
	ID int64 `validate:"required"`
}

// Detail returns one of the session account's records by id.
func (s *Usecase) Detail(ctx context.Context, in DetailInput) (*entity.Registration, error) {
	ctx, span := s.startSpan(ctx, "Detail")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	reg, err := s.repoDB.GetRegistration(ctx, auth.AccountID, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get registration", "account_id", auth.AccountID, "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return reg, nil
}
