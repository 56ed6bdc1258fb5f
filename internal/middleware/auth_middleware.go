// internal/middleware/auth_middleware.go
package middleware

import (
	"hopegivers-web/internal/pkg/response"
	"hopegivers-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// RequireSession rejects requests without a live authenticated session.
// A corrupt or expired cookie is torn down by the session manager during the
// lookup, so a rejected caller arrives at /login with a clean slate.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := session.NewCookieStore(c.Writer, c.Request)
		rec, ok := m.sessions.Current(st)
		if !ok || rec.Token == "" {
			response.Unauthorized(c, "authentication required")
			return
		}

		setSessionContext(c, rec)
		c.Next()
	}
}

// RequireRole requires the session to carry at least one of the given roles.
// MUST be used after RequireSession().
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, exists := GetRecord(c)
		if !exists {
			response.Forbidden(c, "no session found - authentication required")
			return
		}

		for _, role := range roles {
			if rec.Roles.Has(role) {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "insufficient role")
	}
}

// OptionalSession attaches the session to the context when one exists but
// lets anonymous requests through.
func (m *AuthMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := session.NewCookieStore(c.Writer, c.Request)
		if rec, ok := m.sessions.Current(st); ok {
			setSessionContext(c, rec)
		}
		c.Next()
	}
}

func setSessionContext(c *gin.Context, rec *session.Record) {
	c.Set("session", rec)
	c.Set("user_name", rec.UserName)
	c.Set("token", rec.Token)
	c.Set("roles", rec.Roles)
}
