package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(headerName, apiKey string) *gin.Engine {
	router := gin.New()
	router.Use(APIKeyAuth(headerName, apiKey))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	const unauthorizedBody = `{"error":"Please Authenticate with valid API key"}`

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{name: "valid key", header: "api-key", value: "sekret", wantStatus: http.StatusOK},
		{name: "wrong key", header: "api-key", value: "nope", wantStatus: http.StatusUnauthorized},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "empty value", header: "api-key", value: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong header name", header: "x-api-key", value: "sekret", wantStatus: http.StatusUnauthorized},
	}

	router := newAuthRouter("api-key", "sekret")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, unauthorizedBody, w.Body.String())
			} else {
				assert.Equal(t, "pong", w.Body.String())
			}
		})
	}
}
