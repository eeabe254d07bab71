package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/junaidrashid-git/tribal-art-api/controllers/auth"
	cartControllers "github.com/junaidrashid-git/tribal-art-api/controllers/cart"
	orderControllers "github.com/junaidrashid-git/tribal-art-api/controllers/order"
	productControllers "github.com/junaidrashid-git/tribal-art-api/controllers/product"
	sellerControllers "github.com/junaidrashid-git/tribal-art-api/controllers/seller"
	userControllers "github.com/junaidrashid-git/tribal-art-api/controllers/user"
	wishlistControllers "github.com/junaidrashid-git/tribal-art-api/controllers/wishlist"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Accounts))
	{
		userGroup.POST("/signout", authControllers.SignOut)

		// ──────────────── User Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(d.Store))    // GET /user/profile
		userGroup.PUT("/profile", userControllers.UpdateProfile(d.Store)) // PUT /user/profile

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(d.Store))                   // GET /user/cart
			cartGroup.POST("", cartControllers.AddToCart(d.Store))                    // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(d.Store))    // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Store)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearUserCart(d.Store))              // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetWishlist(d.Store))
			wishlistGroup.POST("", wishlistControllers.AddToWishlist(d.Store))
			wishlistGroup.GET("/:product_id", wishlistControllers.CheckWishlist(d.Store))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(d.Store))
		}

		// ──────────────── Seller Onboarding + Dashboard ────────────────
		sellerGroup := userGroup.Group("/seller")
		{
			sellerGroup.POST("", sellerControllers.BecomeSeller(d.Store))
			sellerGroup.GET("", sellerControllers.GetMySeller(d.Store))
			sellerGroup.GET("/uploads", sellerControllers.GetMyUploads(d.Store))
			sellerGroup.GET("/stats", productControllers.GetSellerStats(d.Store))

			products := sellerGroup.Group("/products")
			{
				products.GET("", productControllers.GetSellerProducts(d.Store))
				products.POST("", productControllers.CreateProduct(d.Store, d.Catalog, d.Uploader))
				products.PUT("/:id", productControllers.UpdateProduct(d.Store, d.Catalog, d.Uploader))
				products.DELETE("/:id", productControllers.DeleteProduct(d.Store, d.Catalog))
				products.GET("/export", productControllers.ExportProductsToExcel(d.Store))
				products.POST("/import", productControllers.ImportProductsFromExcel(d.Store, d.Catalog))
			}
		}

		// ──────────────── Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetMyOrders(d.Store))
	}
}
