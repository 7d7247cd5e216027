package middleware

import (
	"net/http"

	"clinic-management-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the signed session token
const SessionCookie = "session_token"

const identityKey = "identity"

// Authenticator resolves a session token to an identity
type Authenticator interface {
	Authenticate(token string) (*models.User, error)
}

// RequireAuth resolves the session cookie to an identity before any handler
// logic runs. Browser routes get redirected to the login page when the
// session is missing or dead; there is no separate API error path.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity, err := auth.Authenticate(token)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the authenticated user set by RequireAuth, or nil
func Identity(c *gin.Context) *models.User {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return identity
}
