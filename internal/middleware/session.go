package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nos-auction/backend/internal/models"
	"github.com/nos-auction/backend/internal/session"
	"github.com/nos-auction/backend/pkg/response"
)

// ContextSessionUser is the key for the session identity in gin context.
const ContextSessionUser = "session_user"

// Session returns a middleware that requires a valid session cookie and sets
// the verified identity in the gin context. A missing, tampered, or expired
// cookie is a plain 401; the reason is not surfaced.
func Session(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.FromRequest(c)
		if !ok {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}
		c.Set(ContextSessionUser, user)
		c.Next()
	}
}

// SessionUser returns the identity stored by Session.
func SessionUser(c *gin.Context) (models.SessionUser, bool) {
	v, ok := c.Get(ContextSessionUser)
	if !ok {
		return models.SessionUser{}, false
	}
	user, ok := v.(models.SessionUser)
	return user, ok
}
