package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-ahsan/movies-list-api/internal/auth/credentials"
	"github.com/de-ahsan/movies-list-api/internal/auth/token"
	"github.com/de-ahsan/movies-list-api/internal/user"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("session: invalid credentials")

	// ErrUnauthenticated covers every token failure: missing, malformed,
	// expired, bad signature, unresolvable user, or revoked.
	ErrUnauthenticated = errors.New("session: unauthenticated")
)

// Identity is the authenticated principal a verified token resolves to.
type Identity struct {
	UserID string
	Email  string
}

// Manager owns the session lifecycle: it mints tokens on login, clears them
// on logout, and authorizes bearer tokens against the persisted session.
// Each user holds at most one valid token; a new login overwrites the old
// one, revoking it immediately.
type Manager struct {
	users user.Store
	codec *token.Codec
}

func NewManager(users user.Store, codec *token.Codec) *Manager {
	return &Manager{users: users, codec: codec}
}

// Login verifies the credentials, mints a fresh token and persists it as the
// user's single valid session. Any token issued earlier stops working.
func (m *Manager) Login(ctx context.Context, email, password string) (string, user.Summary, error) {
	u, err := m.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return "", user.Summary{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", user.Summary{}, fmt.Errorf("session: login lookup: %w", err)
	}

	if err := credentials.VerifyPassword(u.PasswordHash, password); err != nil {
		return "", user.Summary{}, ErrInvalidCredentials
	}

	tok, err := m.codec.Issue(u.ID)
	if err != nil {
		return "", user.Summary{}, fmt.Errorf("session: issue token: %w", err)
	}

	if err := m.users.SetSessionToken(ctx, u.ID, tok); err != nil {
		return "", user.Summary{}, fmt.Errorf("session: persist token: %w", err)
	}

	return tok, u.Summary(), nil
}

// Logout clears the persisted session of the user the token resolves to.
// The presented token only has to decode; it is not compared against the
// stored value, so a stale token still logs out the current session.
func (m *Manager) Logout(ctx context.Context, tokenString string) error {
	claims, err := m.codec.Verify(tokenString)
	if err != nil {
		return ErrUnauthenticated
	}

	u, err := m.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, user.ErrNotFound) {
		return ErrUnauthenticated
	}
	if err != nil {
		return fmt.Errorf("session: logout lookup: %w", err)
	}

	if err := m.users.ClearSessionToken(ctx, u.ID); err != nil {
		return fmt.Errorf("session: clear token: %w", err)
	}

	return nil
}

// Authorize resolves a bearer token to the identity it was issued for. The
// token must verify, resolve to an existing user, and exactly equal that
// user's persisted session token — a rotated or cleared session rejects
// older tokens even before they expire. Causes no mutation.
func (m *Manager) Authorize(ctx context.Context, tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrUnauthenticated
	}

	claims, err := m.codec.Verify(tokenString)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	u, err := m.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, user.ErrNotFound) {
		return Identity{}, ErrUnauthenticated
	}
	if err != nil {
		return Identity{}, fmt.Errorf("session: authorize lookup: %w", err)
	}

	if u.SessionToken == nil || *u.SessionToken != tokenString {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{UserID: u.ID, Email: u.Email}, nil
}
