// Package db persists travel-registration records in Postgres.
package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

// Migrate creates the module's table when absent. Existing data is never
// dropped. Depends on the accounts table existing first.
func (s *DB) Migrate(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS registrations (
			id                      BIGINT PRIMARY KEY,
			account_id              BIGINT NOT NULL REFERENCES accounts (id),
			name                    TEXT NOT NULL,
			email                   TEXT NOT NULL,
			phone                   TEXT NOT NULL DEFAULT '',
			age                     INT,
			gender                  TEXT NOT NULL DEFAULT '',
			city                    TEXT NOT NULL DEFAULT '',
			state                   TEXT NOT NULL DEFAULT '',
			group_id                INT NOT NULL,
			joined_date             DATE,
			emergency_contact_name  TEXT NOT NULL DEFAULT '',
			emergency_contact_phone TEXT NOT NULL DEFAULT '',
			id_proof_type           TEXT NOT NULL DEFAULT '',
			id_proof_number         TEXT NOT NULL DEFAULT '',
			notes                   TEXT NOT NULL DEFAULT '',
			created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (account_id, email)
		);
	`)
	return err
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("registration.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
