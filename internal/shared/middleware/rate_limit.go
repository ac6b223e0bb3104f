package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"userbook-backend/internal/config"
	"userbook-backend/internal/shared/response"
	"userbook-backend/pkg/cache"
)

// RateLimit is a fixed-window limiter keyed by client IP, counting in Redis
// so limits hold across replicas. A Redis outage fails open: throttling is an
// operational nicety, not a correctness guarantee.
func RateLimit(store cache.Cache, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Err(err).
				Msg("rate limit counter unavailable, failing open")
			c.Next()
			return
		}

		// First hit in a window owns the expiry.
		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, cfg.Window); err != nil {
				log.Warn().Err(err).Msg("rate limit expiry not set")
			}
		}

		if count > int64(cfg.Limit) {
			response.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
