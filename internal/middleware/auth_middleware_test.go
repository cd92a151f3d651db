package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"careflow-sync/internal/middleware"
	"careflow-sync/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func authRouter(t *testing.T, next gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/sync", middleware.Auth(), next)
	return r
}

func doAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	r := authRouter(t, func(c *gin.Context) { c.Status(http.StatusOK) })

	for name, header := range map[string]string{
		"no header":   "",
		"no bearer":   "Token abc",
		"empty token": "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			w := doAuth(r, header)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuth_ServiceRoleKey(t *testing.T) {
	t.Setenv("SERVICE_ROLE_KEY", "svc-secret")
	t.Setenv("JWT_SECRET", "jwt-secret")

	r := authRouter(t, func(c *gin.Context) {
		assert.True(t, c.GetBool("service_role"))
		assert.True(t, contextutil.IsServiceRole(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	w := doAuth(r, "Bearer svc-secret")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_UserJWT(t *testing.T) {
	t.Setenv("SERVICE_ROLE_KEY", "svc-secret")
	t.Setenv("JWT_SECRET", "jwt-secret")

	userID := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID})
	signed, err := token.SignedString([]byte("jwt-secret"))
	assert.NoError(t, err)

	r := authRouter(t, func(c *gin.Context) {
		assert.Equal(t, userID, c.GetString("user_id"))
		assert.Equal(t, userID, contextutil.GetUserID(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	w := doAuth(r, "Bearer "+signed)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_InvalidSignatureRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uuid.NewString()})
	signed, err := token.SignedString([]byte("wrong-secret"))
	assert.NoError(t, err)

	r := authRouter(t, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doAuth(r, "Bearer "+signed)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuth_TokenWithoutUserIDRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	signed, err := token.SignedString([]byte("jwt-secret"))
	assert.NoError(t, err)

	r := authRouter(t, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doAuth(r, "Bearer "+signed)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
