package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/handlers"
)

// SetupInquiryRoutes configures the public contact form endpoint
func SetupInquiryRoutes(router *gin.RouterGroup, inquiry *handlers.InquiryHandler, m *Middleware) {
	router.POST("/inquiry",
		m.Validation.ValidateInquiryRequest(),
		inquiry.Submit,
	)
}
