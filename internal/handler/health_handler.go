package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradedocs/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	extractorCfg *config.ExtractorConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(extractorCfg *config.ExtractorConfig) *HealthHandler {
	return &HealthHandler{extractorCfg: extractorCfg}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.extractorCfg.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "extractor API key not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
