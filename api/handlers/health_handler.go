package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/media-relay-go/internal/domain"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	repo domain.FetchRepository
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(repo domain.FetchRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.repo != nil {
		if _, err := h.repo.GetStats(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"reason": "history store unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
