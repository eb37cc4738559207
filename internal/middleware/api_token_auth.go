package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APITokenAuth is a middleware that authenticates requests against a static
// API token. An empty configured token disables authentication entirely,
// which is the expected mode for a single-user local deployment.
func APITokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		presented := c.GetHeader("X-API-Key")
		if presented == "" {
			authHeader := c.GetHeader("Authorization")
			presented = strings.TrimPrefix(authHeader, "Bearer ")
			if presented == authHeader {
				presented = ""
			}
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
