package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
)

// ContextSessionKey is the gin context key storing the form session id.
const ContextSessionKey = "sessionID"

// Session extracts the per-session identifier header. The client owns the
// identifier; requests without one simply have no session attached and the
// handlers that require it reject them.
func Session(header string) gin.HandlerFunc {
	if header == "" {
		header = form.SessionHeader
	}
	return func(c *gin.Context) {
		if id := c.GetHeader(header); id != "" {
			c.Set(ContextSessionKey, id)
		}
		c.Next()
	}
}

// SessionID returns the session identifier attached by Session, if any.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionKey)
}
