// Package handlers implements HTTP request handlers for the catalog API.
package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marlon154/boardgame-search/internal/config"
	"github.com/Marlon154/boardgame-search/internal/constants"
	apperrors "github.com/Marlon154/boardgame-search/internal/errors"
	"github.com/Marlon154/boardgame-search/internal/services"
)

// Handler handles HTTP requests for the catalog API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/health", h.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/search", h.handleSearch)
		api.GET("/games/:id", h.handleGameDetails)
		api.POST("/games/:id/save", h.handleSaveGame)
		api.GET("/games/saved", h.handleListSaved)
		api.DELETE("/games/saved/:id", h.handleDeleteSaved)
	}
}

func (h *Handler) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        constants.AppName,
		"version":     constants.AppVersion,
		"description": constants.AppDescription,
	})
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps catalog errors onto HTTP statuses. Exhausted throttle
// retries become 503 so clients know to back off; other upstream failures
// are 502.
func (h *Handler) respondError(c *gin.Context, err error) {
	var catErr *apperrors.CatalogError
	if !stderrors.As(err, &catErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	switch catErr.Type {
	case apperrors.ErrorTypeProviderBusy:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "the provider is busy, try again later"})
	case apperrors.ErrorTypeInvalidID:
		c.JSON(http.StatusBadRequest, gin.H{"error": catErr.Message})
	case apperrors.ErrorTypeGameNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": catErr.Message})
	case apperrors.ErrorTypeDatabaseFailure:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": catErr.Message})
	}
}
