package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
)

func (s *DB) CreateCode(ctx context.Context, in entity.OneTimeCode) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCode")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO one_time_codes (id, email, digits, issued_at, expires_at, consumed)
		VALUES ($1, $2, $3, $4, $5, FALSE)
	`, in.ID, in.Email, in.Digits, in.IssuedAt, in.ExpiresAt)

	err = s.mapError(err)
	return err
}

// ConsumeLatestCode locks the most recent code for email, evaluates it, and
// flips consumed on success — all in one transaction. Only the latest code
// is ever reachable; older ones stay as dead rows. Returns ErrNotFound when
// no code exists for the email.
func (s *DB) ConsumeLatestCode(ctx context.Context, email, candidate string, now time.Time) (verdict entity.CodeVerdict, err error) {
	ctx, span := s.startSpan(ctx, "ConsumeLatestCode")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	var code entity.OneTimeCode
	err = tx.QueryRow(ctx, `
		SELECT id, email, digits, issued_at, expires_at, consumed
		FROM one_time_codes
		WHERE email = $1
		ORDER BY issued_at DESC
		LIMIT 1
		FOR UPDATE
	`, email).Scan(&code.ID, &code.Email, &code.Digits, &code.IssuedAt, &code.ExpiresAt, &code.Consumed)
	if err != nil {
		return 0, s.mapError(err)
	}

	verdict = code.Check(now, candidate)
	if verdict != entity.VerdictOK {
		return verdict, nil
	}

	if _, err = tx.Exec(ctx, `
		UPDATE one_time_codes SET consumed = TRUE WHERE id = $1
	`, code.ID); err != nil {
		return 0, s.mapError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, s.mapError(err)
	}

	return entity.VerdictOK, nil
}
