package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie used by the web routes.
const CookieName = "session_id"

const contextKeySession = "session"

// SessionReader resolves a session ID into a Session. *Store implements it.
type SessionReader interface {
	Get(ctx context.Context, id string) (Session, bool)
}

// SessionFromContext returns the session set by RequireSession.
func SessionFromContext(c *gin.Context) (Session, bool) {
	v, ok := c.Get(contextKeySession)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}

// RequireSession returns a middleware that checks for a valid session cookie
// and sets the session in context. Anonymous clients are redirected to the
// login page and the protected handler never runs.
func RequireSession(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CookieName)
		if err != nil || sessionID == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		sess, ok := sessions.Get(c.Request.Context(), sessionID)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(contextKeySession, sess)
		c.Next()
	}
}
