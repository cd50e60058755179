package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSignatureInvalid = errors.New("token: signature invalid")
	ErrExpired          = errors.New("token: expired")
	ErrMalformed        = errors.New("token: malformed")
)

// Claims carries the signed token payload: the standard registered claims
// plus the authenticated user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

type Config struct {
	Secret []byte
	TTL    time.Duration
}

// Codec signs and verifies compact session tokens. The signing secret and
// validity window are injected at construction; there is no package-level
// key material.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(cfg Config) *Codec {
	return &Codec{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

// WithClock overrides the codec's time source. Tests use this to pin
// issuance and verification to a deterministic instant.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Issue mints a signed token for userID expiring one TTL from now. Expiry is
// stored as an absolute timestamp, never re-derived.
func (c *Codec) Issue(userID string) (string, error) {
	issuedAt := c.now()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
		UserID: userID,
	})

	return tok.SignedString(c.secret)
}

// Verify validates the signature and expiry of tokenString and returns its
// claims. Failures map onto exactly one of ErrSignatureInvalid, ErrExpired,
// ErrMalformed.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)

	switch {
	case err == nil && tok.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignatureInvalid
	default:
		return nil, ErrMalformed
	}
}
