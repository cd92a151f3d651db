package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS mirrors the permissive policy the sync endpoint has always exposed:
// any origin, POST + OPTIONS preflight.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type, cache-control, pragma, accept, x-requested-with")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
				c.Header("Access-Control-Allow-Headers", reqHeaders)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
