package usecase

import (
	"context"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
)

type HomeOutput struct {
	AccountID     int64
	Username      string
	Email         string
	Registrations int64
}

// Home summarizes the session account: identity plus record count.
func (s *Usecase) Home(ctx context.Context) (*HomeOutput, error) {
	ctx, span := s.startSpan(ctx, "Home")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.repoDB.CountRegistrations(ctx, auth.AccountID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count registrations", "account_id", auth.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &HomeOutput{
		AccountID:     auth.AccountID,
		Username:      auth.Username,
		Email:         auth.Email,
		Registrations: count,
	}, nil
}
