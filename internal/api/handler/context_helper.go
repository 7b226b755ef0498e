package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Typed accessors for the identity the auth middleware injected. They return
// zero values on routes without JWTAuth; handlers behind the middleware can
// rely on them being set.

func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

func currentRole(c *gin.Context) string {
	return c.GetString("role")
}

func currentTokenJTI(c *gin.Context) string {
	return c.GetString("token_jti")
}

func currentTokenExpiry(c *gin.Context) time.Time {
	if v, ok := c.Get("token_expires_at"); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
