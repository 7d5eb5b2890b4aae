package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/AmrIbrahim41/smart-shop0/controllers/product"
	userControllers "github.com/AmrIbrahim41/smart-shop0/controllers/user"
)

// SetupPublicRoutes registers the unauthenticated catalog and registration
// endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/users/register", userControllers.RegisterHandler(db))

	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/top", productcontroller.GetTopProducts(db))
		products.GET("/by-category", productcontroller.GetProductsByCategory(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}

	r.GET("/categories", productcontroller.GetCategories(db))
	r.GET("/tags", productcontroller.GetTags(db))
}
