package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/models"
)

const sessionKey = "session"

// Accounts is what the token check needs: the auth provider plus bearer
// token verification.
type Accounts interface {
	auth.Provider
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// ValidateToken checks the bearer token and stores a request-scoped session
// holding the signed-in user.
func ValidateToken(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearer(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		user, err := accounts.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		session := auth.NewSession(accounts)
		session.Restore(user, tokenString)
		c.Set(sessionKey, session)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// Session returns the request's session. Outside ValidateToken it is a
// signed-out session.
func Session(c *gin.Context) *auth.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*auth.Session); ok {
			return s
		}
	}
	return auth.NewSession(nil)
}

// bearer accepts "Bearer <token>" as well as a bare token.
func bearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
