package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naoh-aquatics/config"
	"naoh-aquatics/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func protectedRouter(adminOnly bool) *gin.Engine {
	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if adminOnly {
		handlers = append(handlers, AdminMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})

	router := gin.New()
	router.GET("/protected", handlers...)
	return router
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter(false)

	assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer not-a-token").Code)

	token, err := utils.GenerateToken(3, "admin@naoh.ph", "admin")
	require.NoError(t, err)

	w := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":3`)
}

func TestAdminMiddleware(t *testing.T) {
	router := protectedRouter(true)

	customer, err := utils.GenerateToken(4, "customer@naoh.ph", "customer")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(router, "Bearer "+customer).Code)

	admin, err := utils.GenerateToken(5, "admin@naoh.ph", "admin")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(router, "Bearer "+admin).Code)
}
