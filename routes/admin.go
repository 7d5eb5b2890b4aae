package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/AmrIbrahim41/smart-shop0/controllers/admin"
	productcontroller "github.com/AmrIbrahim41/smart-shop0/controllers/product"
	userControllers "github.com/AmrIbrahim41/smart-shop0/controllers/user"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the staff claim.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardStatsHandler(db))

		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/users/:id", userControllers.GetUserByID(db))
		adminGroup.PUT("/users/:id", userControllers.AdminUpdateUser(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db))

		// ─────────── Product Approval Workflow ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/pending", adminController.ListPendingProducts(db))
			productAdmin.PUT("/:id/approval", adminController.SetProductApproval(db))
		}

		// ─────────── Category & Tag Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}
		tagAdmin := adminGroup.Group("/tags")
		{
			tagAdmin.POST("", productcontroller.CreateTag(db))
			tagAdmin.DELETE("/:id", productcontroller.DeleteTag(db))
		}
	}
}
