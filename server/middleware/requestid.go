package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/validation"
)

// HeaderRequestID carries the request identifier in both directions.
const HeaderRequestID = "X-Request-Id"

// RequestID assigns every request a UUID. A well-formed incoming
// X-Request-Id is kept; anything else is replaced. The id is echoed on the
// response and stored in the request context under logger.RequestIDKey.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validation.ValidateUUID("request_id", c.GetHeader(HeaderRequestID))
		if err != nil {
			id = uuid.New()
		}
		s := id.String()
		c.Set(logger.FieldRequestID, s)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, s))
		c.Header(HeaderRequestID, s)
		c.Next()
	}
}
