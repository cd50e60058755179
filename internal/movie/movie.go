package movie

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound covers both a missing record and one owned by another user;
// callers cannot tell the difference.
var ErrNotFound = errors.New("movie: not found")

type Movie struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Image       []byte    `db:"image" json:"image"`
	PublishYear int       `db:"publish_year" json:"publishYear"`
	UserID      string    `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Update carries the fields a PUT may change. A nil Image leaves the stored
// image untouched.
type Update struct {
	Title       string
	PublishYear int
	Image       []byte
}

// Store defines per-user movie persistence. Every read and write is scoped
// to an owning user id; records of other users are invisible.
type Store interface {
	Create(ctx context.Context, m Movie) error
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]Movie, error)
	GetByID(ctx context.Context, id, userID string) (*Movie, error)
	Update(ctx context.Context, id, userID string, upd Update) (*Movie, error)
	Delete(ctx context.Context, id, userID string) error
}
