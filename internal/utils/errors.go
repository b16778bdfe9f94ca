package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/dto/common"
	"github.com/vorolab/site/internal/logging"
)

// HandleAPIError logs err with request context and answers with the generic
// message only. err itself never reaches the client.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logHTTPError(c, err, status, message)
	c.JSON(status, common.NewErrorResponse(message))
}

func logHTTPError(c *gin.Context, err error, status int, message string) {
	defer func() { _ = recover() }()
	logging.GetLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)
}
