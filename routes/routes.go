package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user,
// order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog + registration (no middleware)
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes
	SetupOrderRoutes(r, db)

	// Admin routes (JWT + staff claim)
	SetupAdminRoutes(r, db)
}
