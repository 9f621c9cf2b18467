package router

import (
	"github.com/gin-gonic/gin"

	"tradedocs/internal/config"
	"tradedocs/internal/handler"
	"tradedocs/internal/middleware"
	"tradedocs/internal/web"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractionH *handler.ExtractionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Multipart bodies are bounded by the per-file cap times the three slots.
	r.MaxMultipartMemory = cfg.Upload.MaxFileSizeMB * 1024 * 1024 * 3

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Browser UI
	web.Register(r)

	v1 := r.Group("/api/v1")
	v1.POST("/extractions", extractionH.Create)

	return r
}
