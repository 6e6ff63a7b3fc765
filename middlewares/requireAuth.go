package middlewares

import (
	"net/http"

	"github.com/RedBeret/ChatPoweredEcommerce/session"
	"github.com/gin-gonic/gin"
)

const (
	// SessionKey is the gin context key holding the authenticated session.
	SessionKey = "session"
	// SessionTokenKey is the gin context key holding the raw session token.
	SessionTokenKey = "sessionToken"
)

// RequireAuth resolves the session cookie against the store and aborts with
// 401 unless the request belongs to an authenticated session.
func RequireAuth(sessions session.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(session.CookieName)
		if err != nil || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		sess, ok := sessions.Get(token)
		if !ok || !sess.Authenticated {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		ctx.Set(SessionKey, sess)
		ctx.Set(SessionTokenKey, token)
		ctx.Next()
	}
}

// SessionFromContext returns the session placed by RequireAuth.
func SessionFromContext(ctx *gin.Context) (session.Session, bool) {
	value, exists := ctx.Get(SessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := value.(session.Session)
	return sess, ok
}
