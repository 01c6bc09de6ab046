package middleware

import (
	"lls_backend/internal/config"
	"lls_backend/internal/model"
	"lls_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret-0123456789abcdef"

func newRouter(roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		AuthMiddleware(&config.JWTConfig{Secret: secret}),
		RoleMiddleware(roles...),
		func(c *gin.Context) {
			c.String(http.StatusOK, string(util.GetUserFromContext(c).Role))
		})
	return r
}

func request(t *testing.T, r *gin.Engine, role model.UserRole, withToken bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if withToken {
		token, err := util.GenerateJWT(1, role, "User", "user@lls.test", secret, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsMissingAndInvalidToken(t *testing.T) {
	r := newRouter(model.RoleStaff)

	w := request(t, r, "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter(model.RoleStaff)

	assert.Equal(t, http.StatusOK, request(t, r, model.RoleStaff, true).Code)
	assert.Equal(t, http.StatusForbidden, request(t, r, model.RoleStudent, true).Code)

	w := request(t, r, model.RoleAdmin, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}
