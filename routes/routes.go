package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/catalog"
	authControllers "github.com/junaidrashid-git/tribal-art-api/controllers/auth"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/realtime"
	"github.com/junaidrashid-git/tribal-art-api/store"
	"github.com/junaidrashid-git/tribal-art-api/uploads"
)

// Accounts is the full auth surface: sessions, token checks, resets and
// federated sign-in.
type Accounts interface {
	authControllers.Accounts
	middleware.Accounts
}

// Deps is everything the route groups hand to their controllers.
type Deps struct {
	Store    *store.Store
	Accounts Accounts
	Google   authControllers.Verifier // nil disables Google sign-in
	Catalog  *catalog.Cache
	Uploader uploads.Uploader
	Hub      *realtime.Hub
	APIKey   string
}

// SetupRoutes is the single entry‐point that wires up Auth, Public, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// 2️⃣ Public catalog, artists and the realtime feed
	SetupPublicRoutes(r, d)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, d)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, d)
}
