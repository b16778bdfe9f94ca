package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/vorolab/site/internal/api/dto/common"
	"github.com/vorolab/site/internal/api/middleware"
	"github.com/vorolab/site/internal/config"
	"github.com/vorolab/site/internal/logging"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")
	SetupInquiryRoutes(api, h.Inquiry, m)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.MsgRouteNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.MsgMethodNotAllowed))
	})
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, cfg *config.Config) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Production:     cfg.IsProduction(),
	}))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.LimitRequestBody(cfg.MaxBodyBytes))
}
