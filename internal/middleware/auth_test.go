package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AdminAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString("admin_username")})
	})
	return r
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func requestWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthValidToken(t *testing.T) {
	r := protectedRouter()

	w := requestWithToken(r, signToken(t, testSecret, time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAdminAuthMissingHeader(t *testing.T) {
	r := protectedRouter()

	w := requestWithToken(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthWrongSecret(t *testing.T) {
	r := protectedRouter()

	w := requestWithToken(r, signToken(t, "other-secret", time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthExpiredToken(t *testing.T) {
	r := protectedRouter()

	w := requestWithToken(r, signToken(t, testSecret, time.Now().Add(-time.Hour)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
