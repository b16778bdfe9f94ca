package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP returns the client IP for logging, preferring the headers set by
// the reverse proxy in front of the API.
func GetRealIP(c *gin.Context) string {
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	// X-Forwarded-For is "client, proxy1, proxy2"
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		client, _, _ := strings.Cut(forwardedFor, ",")
		if client = strings.TrimSpace(client); client != "" {
			return client
		}
	}

	return c.ClientIP()
}
