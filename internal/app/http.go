package app

import (
	"context"

	"github.com/de-ahsan/movies-list-api/internal/auth/handler"
	"github.com/de-ahsan/movies-list-api/internal/auth/session"
	"github.com/de-ahsan/movies-list-api/internal/auth/token"
	"github.com/de-ahsan/movies-list-api/internal/config"
	"github.com/de-ahsan/movies-list-api/internal/middleware"
	"github.com/de-ahsan/movies-list-api/internal/movie"
	"github.com/de-ahsan/movies-list-api/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewPostgresStore(infra.DB)
	movieStore := movie.NewPostgresStore(infra.DB)

	codec := token.NewCodec(token.Config{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.TokenTTL,
	})

	sessions := session.NewManager(userStore, codec)

	authHandler := handler.NewHandler(sessions)
	movieHandler := movie.NewHandler(movieStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(sessions))

	movieHandler.RegisterRoutes(protected)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
