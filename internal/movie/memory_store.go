package movie

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is a map-backed Store used by tests and local development.
type MemoryStore struct {
	mu     sync.RWMutex
	movies map[string]Movie
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{movies: make(map[string]Movie)}
}

func (s *MemoryStore) Create(_ context.Context, m Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.movies[m.ID] = m
	return nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string, page, pageSize int) ([]Movie, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]Movie, 0)
	for _, m := range s.movies {
		if m.UserID == userID {
			owned = append(owned, m)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.Before(owned[j].CreatedAt)
		}
		return owned[i].ID < owned[j].ID
	})

	start := (page - 1) * pageSize
	if start >= len(owned) {
		return []Movie{}, nil
	}
	end := start + pageSize
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], nil
}

func (s *MemoryStore) GetByID(_ context.Context, id, userID string) (*Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.movies[id]
	if !ok || m.UserID != userID {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStore) Update(_ context.Context, id, userID string, upd Update) (*Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok || m.UserID != userID {
		return nil, ErrNotFound
	}
	m.Title = upd.Title
	m.PublishYear = upd.PublishYear
	if upd.Image != nil {
		m.Image = upd.Image
	}
	s.movies[id] = m
	return &m, nil
}

func (s *MemoryStore) Delete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok || m.UserID != userID {
		return ErrNotFound
	}
	delete(s.movies, id)
	return nil
}
