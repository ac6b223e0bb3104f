package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"userbook-backend/internal/domains/user"
	"userbook-backend/internal/shared/response"
)

// validatedPayloadKey is where the validator stage publishes the normalized
// payload for the create handler.
const validatedPayloadKey = "validated_create_user"

// ValidateCreateUser is the validator stage of the create pipeline:
// guard → validate → handler. It binds the JSON body, checks it in the fixed
// precedence (missing → length → enum), and only on success normalizes the
// payload and passes it on. Any failure terminates the chain with a 400 and
// the payload is never partially normalized.
func ValidateCreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, user.ToHTTPStatus(user.ErrMissingFields), user.ErrorMessage(user.ErrMissingFields))
			c.Abort()
			return
		}

		if err := req.Validate(); err != nil {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Str("reason", err.Error()).
				Msg("user payload rejected")

			response.Error(c, user.ToHTTPStatus(err), user.ErrorMessage(err))
			c.Abort()
			return
		}

		req.Normalize()
		c.Set(validatedPayloadKey, req)

		c.Next()
	}
}
