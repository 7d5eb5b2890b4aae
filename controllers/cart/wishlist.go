package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.WishlistItem
		if err := db.
			Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch wishlist", err))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/wishlist — adds the product, or removes it when already there.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			ProductID uint `json:"product_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid wishlist payload", err))
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "product not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to validate product", err))
			return
		}

		var item models.WishlistItem
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.WishlistItem{UserID: userID, ProductID: product.ID}
			if err := db.Create(&item).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to add wishlist item", err))
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "added"})
		case err != nil:
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch wishlist item", err))
		default:
			if err := db.Delete(&item).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to remove wishlist item", err))
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "removed"})
		}
	}
}
