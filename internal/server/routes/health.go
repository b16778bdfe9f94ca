package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/handlers"
	"github.com/vorolab/site/internal/metrics"
)

// SetupHealthRoutes configures health check and metrics endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler) {
	router.GET("/health", health.Check)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
