package routes

import (
	"github.com/vorolab/site/internal/api/handlers"
	"github.com/vorolab/site/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Inquiry *handlers.InquiryHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the per-route middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
