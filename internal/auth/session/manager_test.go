package session

import (
	"context"
	"testing"
	"time"

	"github.com/de-ahsan/movies-list-api/internal/auth/credentials"
	"github.com/de-ahsan/movies-list-api/internal/auth/token"
	"github.com/de-ahsan/movies-list-api/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "test@example.com"
	testPassword = "password123"
)

type fixture struct {
	manager *Manager
	users   *user.MemoryStore
	clock   time.Time
	userID  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users: user.NewMemoryStore(),
		clock: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	codec := token.NewCodec(token.Config{
		Secret: []byte("test-signing-secret"),
		TTL:    time.Hour,
	}).WithClock(func() time.Time { return f.clock })

	f.manager = NewManager(f.users, codec)

	hash, err := credentials.HashPassword(testPassword)
	require.NoError(t, err)

	f.userID = "11111111-1111-1111-1111-111111111111"
	require.NoError(t, f.users.Create(context.Background(), user.User{
		ID:           f.userID,
		Email:        testEmail,
		PasswordHash: hash,
	}))

	return f
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.manager.Login(context.Background(), "nobody@example.com", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.manager.Login(context.Background(), testEmail, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_PersistsTokenAndReturnsSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tok, summary, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.Equal(t, f.userID, summary.ID)
	assert.Equal(t, testEmail, summary.Email)

	stored, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	require.NotNil(t, stored.SessionToken)
	assert.Equal(t, tok, *stored.SessionToken)

	identity, err := f.manager.Authorize(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, f.userID, identity.UserID)
	assert.Equal(t, testEmail, identity.Email)
}

func TestLogin_SecondLoginRevokesFirstToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t1, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	f.advance(time.Second)

	t2, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	_, err = f.manager.Authorize(ctx, t1)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.manager.Authorize(ctx, t2)
	assert.NoError(t, err)
}

func TestAuthorize_AfterLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tok, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	require.NoError(t, f.manager.Logout(ctx, tok))

	_, err = f.manager.Authorize(ctx, tok)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_ExpiredToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tok, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	f.advance(time.Hour)

	_, err = f.manager.Authorize(ctx, tok)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_MissingOrGarbageToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.manager.Authorize(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.manager.Authorize(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorize_UnresolvableUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	codec := token.NewCodec(token.Config{
		Secret: []byte("test-signing-secret"),
		TTL:    time.Hour,
	}).WithClock(func() time.Time { return f.clock })

	tok, err := codec.Issue("99999999-9999-9999-9999-999999999999")
	require.NoError(t, err)

	_, err = f.manager.Authorize(ctx, tok)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLogout_InvalidToken(t *testing.T) {
	f := newFixture(t)

	err := f.manager.Logout(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestLogout_ExpiredToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tok, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	f.advance(time.Hour)

	assert.ErrorIs(t, f.manager.Logout(ctx, tok), ErrUnauthenticated)
}

// A rotated-out token still decodes, so it can log out the session that
// replaced it. Logout checks signature and expiry only, never the stored
// value.
func TestLogout_StaleTokenClearsCurrentSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t1, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	f.advance(time.Second)

	t2, _, err := f.manager.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	require.NoError(t, f.manager.Logout(ctx, t1))

	_, err = f.manager.Authorize(ctx, t2)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
