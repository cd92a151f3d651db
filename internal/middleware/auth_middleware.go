package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"
	"strings"

	"careflow-sync/internal/shared/contextutil"
	"careflow-sync/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Auth accepts either the shared service-role credential or a user session
// JWT. The sync contract surfaces every request-level failure as 400, so
// auth failures here use StatusBadRequest rather than 401.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusBadRequest, "UNAUTHORIZED", "No authorization header", nil)
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, http.StatusBadRequest, "UNAUTHORIZED", "Malformed authorization header", nil)
			c.Abort()
			return
		}

		if serviceKey := os.Getenv("SERVICE_ROLE_KEY"); serviceKey != "" {
			if subtle.ConstantTimeCompare([]byte(tokenString), []byte(serviceKey)) == 1 {
				c.Set("service_role", true)
				ctx := contextutil.WithServiceRole(c.Request.Context())
				c.Request = c.Request.WithContext(ctx)
				c.Next()
				return
			}
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusBadRequest, "UNAUTHORIZED", "Invalid or expired token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusBadRequest, "UNAUTHORIZED", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusBadRequest, "UNAUTHORIZED", "User ID not found in token", nil)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
