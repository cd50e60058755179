package main

import (
	"context"
	"errors"
	"time"

	"github.com/de-ahsan/movies-list-api/internal/auth/credentials"
	"github.com/de-ahsan/movies-list-api/internal/config"
	"github.com/de-ahsan/movies-list-api/internal/db"
	"github.com/de-ahsan/movies-list-api/internal/logger"
	"github.com/de-ahsan/movies-list-api/internal/user"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	seedEmail    = "test@example.com"
	seedPassword = "password123"
)

// Seeds the well-known test user. Account creation is not exposed over HTTP,
// so this is the only way records enter the users table.
func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", map[string]any{
			"error": err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlDB, err := sqlx.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to open database", map[string]any{
			"error": err.Error(),
		})
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("failed to reach database", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		logger.Fatal("migration failed", map[string]any{
			"error": err.Error(),
		})
	}

	store := user.NewPostgresStore(sqlDB)

	if _, err := store.GetByEmail(ctx, seedEmail); err == nil {
		logger.Info("user already exists, seeder skipped", map[string]any{
			"email": seedEmail,
		})
		return
	} else if !errors.Is(err, user.ErrNotFound) {
		logger.Fatal("user lookup failed", map[string]any{
			"error": err.Error(),
		})
	}

	hash, err := credentials.HashPassword(seedPassword)
	if err != nil {
		logger.Fatal("password hashing failed", map[string]any{
			"error": err.Error(),
		})
	}

	err = store.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        seedEmail,
		PasswordHash: hash,
	})
	if err != nil {
		logger.Fatal("seeding failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("user seeded successfully", map[string]any{
		"email": seedEmail,
	})
}
