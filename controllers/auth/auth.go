package authControllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
)

// Accounts is the provider surface these handlers need beyond the session.
type Accounts interface {
	auth.Provider
	ConfirmReset(ctx context.Context, token, newPassword string) error
	SignInExternal(ctx context.Context, id *auth.ExternalIdentity) (*auth.Grant, error)
}

// Verifier checks a federated ID token. A nil Verifier disables Google
// sign-in.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*auth.ExternalIdentity, error)
}

type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type ResetInput struct {
	Email string `json:"email"`
}

type ConfirmResetInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrResetInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("❌ %s: %v", msg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func signedIn(c *gin.Context, status int, session *auth.Session) {
	c.JSON(status, gin.H{
		"message": "Login successful",
		"token":   session.Token(),
		"user":    session.User(),
	})
}

// SignUp POST /auth/signup
func SignUp(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		session := auth.NewSession(accounts)
		if err := session.SignUp(c.Request.Context(), input.Email, input.Password, input.FullName); err != nil {
			fail(c, err, "Failed to create account")
			return
		}
		signedIn(c, http.StatusCreated, session)
	}
}

// SignIn POST /auth/signin
func SignIn(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		session := auth.NewSession(accounts)
		if err := session.SignIn(c.Request.Context(), input.Email, input.Password); err != nil {
			fail(c, err, "Failed to sign in")
			return
		}
		signedIn(c, http.StatusOK, session)
	}
}

// GoogleSignIn POST /auth/google
func GoogleSignIn(accounts Accounts, verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		var input GoogleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}

		grant, err := accounts.SignInExternal(c.Request.Context(), identity)
		if err != nil {
			fail(c, err, "Failed to sign in")
			return
		}

		session := auth.NewSession(accounts)
		session.Restore(grant.User, grant.Token)
		signedIn(c, http.StatusOK, session)
	}
}

// ResetPassword POST /auth/reset-password
// Answers the same way whether or not the email is registered.
func ResetPassword(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetInput
		_ = c.ShouldBindJSON(&input)

		if err := auth.NewSession(accounts).ResetPassword(c.Request.Context(), input.Email); err != nil {
			fail(c, err, "Failed to send reset email")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link is on its way"})
	}
}

// ConfirmReset POST /auth/reset-password/confirm
func ConfirmReset(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ConfirmResetInput
		_ = c.ShouldBindJSON(&input)

		if err := accounts.ConfirmReset(c.Request.Context(), input.Token, input.Password); err != nil {
			fail(c, err, "Failed to reset password")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
	}
}

// SignOut POST /user/signout
func SignOut(c *gin.Context) {
	if err := middleware.Session(c).SignOut(c.Request.Context()); err != nil {
		fail(c, err, "Failed to sign out")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
