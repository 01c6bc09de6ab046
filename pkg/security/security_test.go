package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRequest(allowed []string, origin string) http.Header {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(allowed))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Header()
}

func TestCORS_WhitelistedOriginGetsCredentials(t *testing.T) {
	h := corsRequest([]string{"https://lls.example"}, "https://lls.example")
	assert.Equal(t, "https://lls.example", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
}

func TestCORS_WildcardOmitsCredentials(t *testing.T) {
	h := corsRequest([]string{"*"}, "https://anywhere.example")
	assert.Equal(t, "https://anywhere.example", h.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, h.Get("Access-Control-Allow-Credentials"))
}

func TestCORS_UnknownOriginRejected(t *testing.T) {
	h := corsRequest([]string{"https://lls.example"}, "https://evil.example")
	assert.Empty(t, h.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, h.Get("Access-Control-Allow-Credentials"))
}
