package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/handlers"
	"github.com/vorolab/site/internal/api/middleware"
	"github.com/vorolab/site/internal/config"
	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/server/routes"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	logger     *logging.Logger
	httpServer *http.Server
}

// NewServer builds the gin engine and wires every route
func NewServer(cfg *config.Config, inquiryService handlers.InquirySubmitter, logger *logging.Logger) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.HandleMethodNotAllowed = true

	validationMiddleware, err := middleware.NewValidationMiddleware()
	if err != nil {
		return nil, err
	}

	h := &routes.Handlers{
		Inquiry: handlers.NewInquiryHandler(inquiryService),
		Health:  handlers.NewHealthHandler(),
	}
	m := &routes.Middleware{
		Validation: validationMiddleware,
	}

	routes.SetupGlobalMiddleware(router, logger, cfg)
	routes.Setup(router, h, m)

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown waits for in-flight requests, including running dispatches
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
