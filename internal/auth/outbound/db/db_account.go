package db

import (
	"context"

	"github.com/putrawicaksana/travelreg/internal/auth/entity"
)

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (out *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	var acc entity.Account
	err = s.conn.QueryRow(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE email = $1
	`, email).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &acc, nil
}

func (s *DB) GetAccountByUsernameOrEmail(ctx context.Context, username, email string) (out *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByUsernameOrEmail")
	defer func() { s.endSpan(span, err) }()

	var acc entity.Account
	err = s.conn.QueryRow(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM accounts
		WHERE username = $1 OR email = $2
		LIMIT 1
	`, username, email).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &acc, nil
}

func (s *DB) CreateAccount(ctx context.Context, in entity.Account) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, in.ID, in.Username, in.Email, in.PasswordHash, in.CreatedAt)

	err = s.mapError(err)
	return err
}
