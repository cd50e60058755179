package movie

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, m Movie) error {
	query, args, err := builder.
		Insert("movies").
		Columns("id", "title", "image", "publish_year", "user_id").
		Values(m.ID, m.Title, m.Image, m.PublishYear, m.UserID).
		ToSql()
	if err != nil {
		return fmt.Errorf("movie: build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("movie: create: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]Movie, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query, args, err := builder.
		Select("id", "title", "image", "publish_year", "user_id", "created_at").
		From("movies").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		Offset(uint64((page - 1) * pageSize)).
		Limit(uint64(pageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("movie: build list: %w", err)
	}

	movies := []Movie{}
	if err := s.db.SelectContext(ctx, &movies, query, args...); err != nil {
		return nil, fmt.Errorf("movie: list: %w", err)
	}
	return movies, nil
}

func (s *PostgresStore) GetByID(ctx context.Context, id, userID string) (*Movie, error) {
	query, args, err := builder.
		Select("id", "title", "image", "publish_year", "user_id", "created_at").
		From("movies").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("movie: build get: %w", err)
	}

	var m Movie
	err = s.db.GetContext(ctx, &m, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("movie: get: %w", err)
	}
	return &m, nil
}

func (s *PostgresStore) Update(ctx context.Context, id, userID string, upd Update) (*Movie, error) {
	qb := builder.
		Update("movies").
		Set("title", upd.Title).
		Set("publish_year", upd.PublishYear).
		Where(sq.Eq{"id": id, "user_id": userID})
	if upd.Image != nil {
		qb = qb.Set("image", upd.Image)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("movie: build update: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movie: update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("movie: update: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id, userID)
}

func (s *PostgresStore) Delete(ctx context.Context, id, userID string) error {
	query, args, err := builder.
		Delete("movies").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("movie: build delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("movie: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("movie: delete: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
