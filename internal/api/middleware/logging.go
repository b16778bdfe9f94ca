package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/constants"
	"github.com/vorolab/site/internal/logging"
	"github.com/vorolab/site/internal/utils"
)

// RequestLogger logs one line per request. The logger itself decides whether
// request lines are emitted (LOG_REQUESTS).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.GetString(constants.ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
