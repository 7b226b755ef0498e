package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen caps externally supplied request IDs to keep log lines sane.
const requestIDMaxLen = 64

// RequestID propagates X-Request-ID, generating a UUID when the client sent
// none, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
