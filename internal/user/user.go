package user

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("user: not found")

// User is the persisted account record. SessionToken holds the single
// currently valid token, or nil when logged out.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	SessionToken *string   `db:"session_token"`
	CreatedAt    time.Time `db:"created_at"`
}

// Summary is the caller-visible projection of a user. It never carries the
// password hash.
type Summary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Email: u.Email}
}

// Store defines how user records are stored and retrieved. Session-token
// writes are single-statement updates: concurrent writers race and the last
// one wins.
type Store interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	SetSessionToken(ctx context.Context, id string, token string) error
	ClearSessionToken(ctx context.Context, id string) error
}
