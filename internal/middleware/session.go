package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextSessionID keys the dashboard session id in the gin context.
	ContextSessionID = "sessionID"

	sessionCookie = "dash_session"
	// Session cookie lifetime in seconds. Matches the selection-store TTL.
	sessionMaxAge = 24 * 60 * 60
)

// SessionMiddleware assigns each browser a dashboard session id. The id keys
// per-session calendar state and selection state; there is no authentication
// attached to it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		c.Set(ContextSessionID, sid)
		c.Next()
	}
}

// RequestIDMiddleware tags every response for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-Id", uuid.NewString())
		c.Next()
	}
}
