package usecase

import (
	"context"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

// List returns every registration record owned by the session account.
func (s *Usecase) List(ctx context.Context) ([]entity.Registration, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	regs, err := s.repoDB.ListRegistrations(ctx, auth.AccountID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list registrations", "account_id", auth.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return regs, nil
}
