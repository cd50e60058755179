package app

import (
	"context"

	"github.com/de-ahsan/movies-list-api/internal/config"
	"github.com/de-ahsan/movies-list-api/internal/db"
	"github.com/de-ahsan/movies-list-api/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Infra struct {
	DB *sqlx.DB
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sqlx.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := db.RunMigration(ctx, sqlDB); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	return &Infra{DB: sqlDB}, nil
}
