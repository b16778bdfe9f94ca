package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vorolab/site/internal/api/dto/common"
)

// CORSConfig controls which browser origins may call the API
type CORSConfig struct {
	AllowedOrigins []string
	Production     bool
}

// CORS middleware
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowAny := false
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			allowAny = true
		}
		if origin != "" {
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case !cfg.Production || len(allowed) == 0:
			// In development, or with nothing configured, be permissive
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		case origin == "":
			// Same-origin and non-browser callers send no Origin header
		case allowAny || allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse(common.MsgForbiddenOrigin))
			return
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Request-ID, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
