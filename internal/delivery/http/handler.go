package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dishcovery/backend/internal/domain"
)

// Matcher is the matching entry point consumed by the handler.
type Matcher interface {
	MatchRecipes(ctx context.Context, req domain.MatchRequest) (*domain.ResultPage, error)
}

// CatalogReader exposes the cached catalog reads the product surface needs
// beyond matching: the typeahead ingredient list and cache invalidation.
type CatalogReader interface {
	IngredientNames(ctx context.Context) ([]string, error)
	Invalidate(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	matcher Matcher
	catalog CatalogReader
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(matcher Matcher, catalog CatalogReader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{matcher: matcher, catalog: catalog, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dishcovery-backend",
		"version": "1.0.0",
	})
}

// MatchRecipes handles recipe matching requests. An empty ingredient list
// is valid and returns the full catalog ranked by rating.
func (h *Handler) MatchRecipes(c *gin.Context) {
	var req domain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	page, err := h.matcher.MatchRecipes(c.Request.Context(), req)
	if err != nil {
		h.renderMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListIngredients returns every ingredient name known to the catalog, for
// the typeahead UI.
func (h *Handler) ListIngredients(c *gin.Context) {
	names, err := h.catalog.IngredientNames(c.Request.Context())
	if err != nil {
		h.renderMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": names})
}

// InvalidateCache drops the catalog cache so the next query reloads from
// upstream. Called after catalog bulk reloads.
func (h *Handler) InvalidateCache(c *gin.Context) {
	if err := h.catalog.Invalidate(c.Request.Context()); err != nil {
		h.logger.Error("cache invalidation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cache invalidation failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// renderMatchError maps engine errors to responses. Catalog unavailability
// is the only user-visible failure and is reported as "no results,
// retrieval unavailable" rather than a raw error.
func (h *Handler) renderMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.logger.Error("catalog unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"results": []domain.RankedRecipe{},
			"total":   0,
			"error":   "retrieval unavailable",
		})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
	default:
		h.logger.Error("match request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
