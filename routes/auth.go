package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/junaidrashid-git/tribal-art-api/controllers/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.SignUp(d.Accounts))
		authGroup.POST("/signin", authControllers.SignIn(d.Accounts))

		// Google login through a Firebase ID token
		authGroup.POST("/google", authControllers.GoogleSignIn(d.Accounts, d.Google))

		authGroup.POST("/reset-password", authControllers.ResetPassword(d.Accounts))
		authGroup.POST("/reset-password/confirm", authControllers.ConfirmReset(d.Accounts))
	}
}
