package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/constants"
	"github.com/vorolab/site/internal/api/dto/common"
	"github.com/vorolab/site/internal/logging"
)

// Recovery turns a panic into a 500 with the generic error body
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logPanic(logger, c, rec)
				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgInternalServer))
			}
		}()

		c.Next()
	}
}

func logPanic(logger *logging.Logger, c *gin.Context, rec interface{}) {
	defer func() { _ = recover() }()
	logger.Error("[PANIC] %s %s | %s | %v\n%s",
		c.Request.Method,
		c.Request.URL.Path,
		c.GetString(constants.ContextKeyRequestID),
		rec,
		debug.Stack(),
	)
}
