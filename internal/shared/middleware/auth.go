package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"userbook-backend/internal/shared/response"
)

// APIKeyAuth rejects any request whose designated header does not carry the
// configured shared secret. The comparison is constant-time; a mismatch or
// absent header short-circuits the chain before any downstream handler runs.
func APIKeyAuth(headerName, apiKey string) gin.HandlerFunc {
	secret := []byte(apiKey)

	return func(c *gin.Context) {
		provided := c.GetHeader(headerName)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), secret) != 1 {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("ip", c.ClientIP()).
				Msg("API key authentication failed")

			response.Error(c, http.StatusUnauthorized, "Please Authenticate with valid API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
