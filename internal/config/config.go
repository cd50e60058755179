package config

import (
	"errors"
	"os"
	"time"
)

const defaultTokenTTL = time.Hour

type Config struct {
	AppPort string

	DatabaseDSN string

	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment. The signing secret and
// database DSN have no fallback: a missing value is a startup error.
func Load() (Config, error) {

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		TokenTTL: defaultTokenTTL,
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("config: DATABASE_DSN is required")
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("config: JWT_SECRET is required")
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errors.New("config: TOKEN_TTL must be a duration, e.g. 1h")
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil

}
