package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nos-auction/backend/internal/models"
)

// SetCookie writes the session cookie: http-only, same-site-lax, path /,
// max-age equal to the token lifetime.
func (s *Service) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
}

// ClearCookie expires the session cookie immediately.
func (s *Service) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}

// FromRequest reads and verifies the session cookie. A missing cookie and a
// failed verification are indistinguishable to the caller.
func (s *Service) FromRequest(c *gin.Context) (models.SessionUser, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return models.SessionUser{}, false
	}
	return s.Verify(token)
}
