package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/media-relay-go/internal/app"
	"github.com/yourusername/media-relay-go/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultListLimit = 50

// FetchHandler handles fetch history and probe requests
type FetchHandler struct {
	pipeline *app.Pipeline
	repo     domain.FetchRepository
	logger   *zap.Logger
}

// NewFetchHandler creates a new fetch handler
func NewFetchHandler(pipeline *app.Pipeline, repo domain.FetchRepository, logger *zap.Logger) *FetchHandler {
	return &FetchHandler{
		pipeline: pipeline,
		repo:     repo,
		logger:   logger,
	}
}

// ListFetches handles GET /api/v1/fetches
func (h *FetchHandler) ListFetches(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	records, err := h.repo.FindRecent(limit)
	if err != nil {
		h.logger.Error("Failed to list fetches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetStats handles GET /api/v1/fetches/stats
func (h *FetchHandler) GetStats(c *gin.Context) {
	stats, err := h.repo.GetStats()
	if err != nil {
		h.logger.Error("Failed to get stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetFetch handles GET /api/v1/fetches/:id
func (h *FetchHandler) GetFetch(c *gin.Context) {
	record, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "fetch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ProbeRequest represents a request to probe a URL
type ProbeRequest struct {
	URL string `json:"url" binding:"required"`
}

// Probe handles POST /api/v1/probe. It runs fetch and selection for the URL
// and reports the classified outcome without delivering anything.
func (h *FetchHandler) Probe(c *gin.Context) {
	var req ProbeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.pipeline.Probe(c.Request.Context(), req.URL)
	switch {
	case errors.Is(err, domain.ErrUnsupportedURL):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no handler matches this URL"})
	case errors.Is(err, domain.ErrNoMediaFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNoMediaFound.Error(), "fetch": record})
	case err != nil:
		h.logger.Error("Probe failed", zap.String("url", req.URL), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "fetch": record})
	default:
		c.JSON(http.StatusOK, record)
	}
}
