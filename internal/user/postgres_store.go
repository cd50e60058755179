package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
	`, u.ID, u.Email, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("user: create: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, `
		SELECT id, email, password_hash, session_token, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: get by email: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, `
		SELECT id, email, password_hash, session_token, created_at
		FROM users
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user: get by id: %w", err)
	}
	return &u, nil
}

func (s *PostgresStore) SetSessionToken(ctx context.Context, id string, token string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET session_token = $2 WHERE id = $1
	`, id, token)
	if err != nil {
		return fmt.Errorf("user: set session token: %w", err)
	}
	return checkAffected(res)
}

func (s *PostgresStore) ClearSessionToken(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET session_token = NULL WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("user: clear session token: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
