package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/dto/common"
	"github.com/vorolab/site/internal/version"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness. The relay has no backing store, so there is
// nothing else to probe.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
