package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/AmrIbrahim41/smart-shop0/controllers/cart"
	productcontroller "github.com/AmrIbrahim41/smart-shop0/controllers/product"
	reviewControllers "github.com/AmrIbrahim41/smart-shop0/controllers/review"
	userControllers "github.com/AmrIbrahim41/smart-shop0/controllers/user"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints plus the authenticated
// product and review endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.AddToCart(db))
			cartGroup.PUT("", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
		}

		// ──────────────── Wishlist ────────────────
		userGroup.GET("/wishlist", cartControllers.GetWishlist(db))
		userGroup.POST("/wishlist", cartControllers.ToggleWishlist(db))

		// ──────────────── Vendor Products ────────────────
		userGroup.GET("/products", productcontroller.GetMyProducts(db))
	}

	// Vendor product management + reviews
	products := r.Group("/products")
	products.Use(middleware.ValidateToken)
	{
		products.POST("", productcontroller.CreateProduct(db))
		products.PUT("/:id", productcontroller.UpdateProduct(db))
		products.DELETE("/:id", productcontroller.DeleteProduct(db))
		products.DELETE("/images/:id", productcontroller.DeleteProductImage(db))

		products.POST("/:id/reviews", reviewControllers.CreateReview(db))
		products.PUT("/:id/reviews", reviewControllers.UpdateReview(db))
	}
}
