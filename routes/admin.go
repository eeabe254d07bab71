package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/tribal-art-api/controllers/admin"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.APIKey))
	{
		// ─────────── Seller Approval Workflow ───────────
		sellerMgmt := adminGroup.Group("/sellers")
		{
			sellerMgmt.GET("", adminController.ListSellers(d.Store)) // ?status=pending
			sellerMgmt.POST("/:id/approve", adminController.ApproveSeller(d.Store))
			sellerMgmt.POST("/:id/reject", adminController.RejectSeller(d.Store))
		}
	}
}
