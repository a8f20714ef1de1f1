package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/pkg/utils"
)

// AgentKeyMiddleware guards the endpoints consumed by the external agent
// platform. Only a bcrypt hash of the key is configured server-side.
func AgentKeyMiddleware(hashedKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if hashedKey == "" {
			utils.RespondError(c, http.StatusServiceUnavailable, "Agent access is not configured")
			c.Abort()
			return
		}

		key := c.GetHeader("X-Agent-Key")
		if key == "" || utils.CompareAgentKey(hashedKey, key) != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid agent key")
			c.Abort()
			return
		}

		c.Next()
	}
}
