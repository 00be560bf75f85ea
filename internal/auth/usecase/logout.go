package usecase

import (
	"context"
	"log/slog"

	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

// Logout clears the session unconditionally. Logging out an anonymous
// session is not an error.
func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	token, ok := session.GetToken(ctx)
	if !ok {
		return nil
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		slog.ErrorContext(ctx, "failed to delete session", "error", err)
		return err
	}

	return nil
}
