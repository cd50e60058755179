package handler

import (
	"errors"
	"net/http"

	"github.com/de-ahsan/movies-list-api/internal/auth/session"
	"github.com/de-ahsan/movies-list-api/internal/logger"
	"github.com/de-ahsan/movies-list-api/internal/middleware"
	"github.com/de-ahsan/movies-list-api/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sessions *session.Manager
}

func NewHandler(sessions *session.Manager) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  user.Summary `json:"user"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	tok, summary, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		return
	}
	if err != nil {
		logger.Error("login failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: tok, User: summary})
}

func (h *Handler) Logout(c *gin.Context) {
	tok := middleware.BearerToken(c.Request)
	if tok == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	err := h.sessions.Logout(c.Request.Context(), tok)
	if errors.Is(err, session.ErrUnauthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	if err != nil {
		logger.Error("logout failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}
