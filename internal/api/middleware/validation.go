package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/constants"
	"github.com/vorolab/site/internal/api/dto/common"
	inquirydto "github.com/vorolab/site/internal/api/dto/v1/inquiry"
	"github.com/vorolab/site/internal/api/validation"
	"github.com/vorolab/site/internal/utils"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() (*ValidationMiddleware, error) {
	if err := validation.RegisterValidators(); err != nil {
		return nil, err
	}
	return &ValidationMiddleware{}, nil
}

// ValidateInquiryRequest binds the inquiry JSON body and stores it in the
// context. Missing required fields answer 400; a body that cannot be decoded
// answers 500 like any other unexpected failure.
func (m *ValidationMiddleware) ValidateInquiryRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inquirydto.InquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			switch {
			case validation.FormatValidationError(err) != nil:
				utils.HandleAPIError(c, err, http.StatusBadRequest, common.MsgMissingFields)
			case errors.As(err, &maxBytesErr):
				utils.HandleAPIError(c, err, http.StatusRequestEntityTooLarge, common.MsgRequestTooLarge)
			default:
				utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgInternalServer)
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyInquiry, &req)
		c.Next()
	}
}
