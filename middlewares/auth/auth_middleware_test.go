package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
)

func TestMain(m *testing.M) {
	logger.InitLoggers()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newProtectedRouter(adminOnly bool) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if adminOnly {
		handlers = append(handlers, AdminMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("MissingTokenRejected", func(t *testing.T) {
		r := newProtectedRouter(false)
		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageTokenRejected", func(t *testing.T) {
		r := newProtectedRouter(false)
		w := doRequest(r, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidTokenAccepted", func(t *testing.T) {
		token, err := shared_models.GenerateAccessToken(uuid.New(), shared_models.RoleCustomer, time.Hour)
		require.NoError(t, err)

		r := newProtectedRouter(false)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	t.Run("CustomerRejected", func(t *testing.T) {
		token, err := shared_models.GenerateAccessToken(uuid.New(), shared_models.RoleCustomer, time.Hour)
		require.NoError(t, err)

		r := newProtectedRouter(true)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AdminAccepted", func(t *testing.T) {
		token, err := shared_models.GenerateAccessToken(uuid.New(), shared_models.RoleAdmin, time.Hour)
		require.NoError(t, err)

		r := newProtectedRouter(true)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
