package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/dto/common"
)

// HandleSuccess answers {"success": true}
func HandleSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse())
}
