package movie

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID  = "aaaaaaaa-0000-0000-0000-000000000001"
	otherID  = "aaaaaaaa-0000-0000-0000-000000000002"
	imageJPG = "\xff\xd8\xff\xe0fake"
)

func seedMovies(t *testing.T, store *MemoryStore, userID string, n int) []string {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%03d", userID[:8], i)
		require.NoError(t, store.Create(context.Background(), Movie{
			ID:          id,
			Title:       fmt.Sprintf("movie %d", i),
			Image:       []byte(imageJPG),
			PublishYear: 2000 + i,
			UserID:      userID,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
		ids = append(ids, id)
	}
	return ids
}

func TestMemoryStore_ListIsOwnerScoped(t *testing.T) {
	store := NewMemoryStore()
	seedMovies(t, store, ownerID, 3)
	seedMovies(t, store, otherID, 2)

	movies, err := store.ListByUser(context.Background(), ownerID, 1, 10)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	for _, m := range movies {
		assert.Equal(t, ownerID, m.UserID)
	}
}

func TestMemoryStore_ListPagination(t *testing.T) {
	store := NewMemoryStore()
	ids := seedMovies(t, store, ownerID, 25)

	page1, err := store.ListByUser(context.Background(), ownerID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page1, 10)
	assert.Equal(t, ids[0], page1[0].ID)

	page3, err := store.ListByUser(context.Background(), ownerID, 3, 10)
	require.NoError(t, err)
	require.Len(t, page3, 5)
	assert.Equal(t, ids[20], page3[0].ID)

	empty, err := store.ListByUser(context.Background(), ownerID, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_GetForeignRecordIsInvisible(t *testing.T) {
	store := NewMemoryStore()
	ids := seedMovies(t, store, ownerID, 1)

	_, err := store.GetByID(context.Background(), ids[0], otherID)
	assert.ErrorIs(t, err, ErrNotFound)

	m, err := store.GetByID(context.Background(), ids[0], ownerID)
	require.NoError(t, err)
	assert.Equal(t, "movie 0", m.Title)
}

func TestMemoryStore_UpdateKeepsImageWhenAbsent(t *testing.T) {
	store := NewMemoryStore()
	ids := seedMovies(t, store, ownerID, 1)

	m, err := store.Update(context.Background(), ids[0], ownerID, Update{
		Title:       "renamed",
		PublishYear: 1999,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", m.Title)
	assert.Equal(t, 1999, m.PublishYear)
	assert.Equal(t, []byte(imageJPG), m.Image)
}

func TestMemoryStore_DeleteForeignRecord(t *testing.T) {
	store := NewMemoryStore()
	ids := seedMovies(t, store, ownerID, 1)

	assert.ErrorIs(t, store.Delete(context.Background(), ids[0], otherID), ErrNotFound)
	require.NoError(t, store.Delete(context.Background(), ids[0], ownerID))
	assert.ErrorIs(t, store.Delete(context.Background(), ids[0], ownerID), ErrNotFound)
}
