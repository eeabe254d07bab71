package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/junaidrashid-git/tribal-art-api/controllers/product"
	sellerControllers "github.com/junaidrashid-git/tribal-art-api/controllers/seller"
	"github.com/junaidrashid-git/tribal-art-api/realtime"
)

// SetupPublicRoutes registers browsing endpoints that need no sign-in.
func SetupPublicRoutes(r *gin.Engine, d Deps) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(d.Catalog))                  // GET /products?category=&price_range=&sort=
		products.GET("/filters", productControllers.GetFilterOptions(d.Catalog))     // GET /products/filters
		products.GET("/featured", productControllers.GetFeaturedProducts(d.Catalog)) // GET /products/featured
		products.GET("/listing-options", productControllers.GetListingOptions)       // GET /products/listing-options
		products.GET("/:id", productControllers.GetProductByID(d.Store))             // GET /products/:id
	}

	sellers := r.Group("/sellers")
	{
		sellers.GET("", sellerControllers.GetSellers(d.Store))
		sellers.GET("/:id", sellerControllers.GetSellerProfile(d.Store))
	}

	// websocket endpoint for product change events
	r.GET("/realtime/products", realtime.ServeWS(d.Hub, "products"))
}
