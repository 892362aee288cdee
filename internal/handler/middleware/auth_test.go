//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/jwt"
	"parkspot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, jwtService *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.NewAuthMiddleware(jwtService).RequireAuth())
	router.GET("/protected", func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	router := setupAuthRouter(t, jwtService)

	t.Run("valid token passes and exposes the user id", func(t *testing.T) {
		token, err := jwtService.GenerateToken("user-mock", "demo@parkspot.app")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-mock")
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken("user-mock", "demo@parkspot.app")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
