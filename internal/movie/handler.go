package movie

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/de-ahsan/movies-list-api/internal/logger"
	"github.com/de-ahsan/movies-list-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultPageSize = 10

// Handler serves the movie CRUD routes. Every route sits behind the
// authorization gate and reads and writes records of the authenticated user
// only.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/movies", h.Create)
	r.GET("/movies", h.List)
	r.GET("/movies/:id", h.Get)
	r.PUT("/movies/:id", h.Put)
	r.DELETE("/movies/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	title := c.PostForm("title")
	year, yearErr := strconv.Atoi(c.PostForm("publicationYear"))
	image, imageErr := readImageFile(c)

	if title == "" || yearErr != nil || imageErr != nil || image == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "incomplete data"})
		return
	}

	m := Movie{
		ID:          uuid.NewString(),
		Title:       title,
		Image:       image,
		PublishYear: year,
		UserID:      identity.UserID,
	}

	if err := h.store.Create(c.Request.Context(), m); err != nil {
		logger.Error("movie create failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "movie created successfully"})
}

func (h *Handler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}

	movies, err := h.store.ListByUser(c.Request.Context(), identity.UserID, page, pageSize)
	if err != nil {
		logger.Error("movie list failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (h *Handler) Get(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	m, err := h.store.GetByID(c.Request.Context(), c.Param("id"), identity.UserID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
		return
	}
	if err != nil {
		logger.Error("movie get failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movie": m})
}

func (h *Handler) Put(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	title := c.PostForm("title")
	year, yearErr := strconv.Atoi(c.PostForm("publicationYear"))
	if title == "" || yearErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "incomplete data"})
		return
	}

	// image stays optional on update
	image, err := readImageFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "incomplete data"})
		return
	}

	m, err := h.store.Update(c.Request.Context(), c.Param("id"), identity.UserID, Update{
		Title:       title,
		PublishYear: year,
		Image:       image,
	})
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
		return
	}
	if err != nil {
		logger.Error("movie update failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie updated successfully", "movie": m})
}

func (h *Handler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	err := h.store.Delete(c.Request.Context(), c.Param("id"), identity.UserID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "movie not found"})
		return
	}
	if err != nil {
		logger.Error("movie delete failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie deleted successfully"})
}

// readImageFile reads the uploaded "image" form file fully into memory.
// Returns (nil, nil) when the form has no image part.
func readImageFile(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return readAll(fileHeader)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
