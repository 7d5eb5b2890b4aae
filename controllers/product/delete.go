package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// DeleteProduct removes a product (vendor or staff). Historical order items
// keep their snapshots; only their product reference becomes null.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid product id"))
			return
		}

		var product models.Product
		if err := db.First(&product, uint(productID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "product not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch product", err))
			return
		}

		if !middleware.IsStaff(c) && (product.UserID == nil || *product.UserID != userID) {
			apperrors.Respond(c, apperrors.New(apperrors.KindForbidden, "not authorized to delete this product"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.OrderItem{}).
				Where("product_id = ?", product.ID).
				Update("product_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.WishlistItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to delete product", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// DeleteProductImage removes one gallery image.
func DeleteProductImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid image id"))
			return
		}

		var image models.ProductImage
		if err := db.First(&image, uint(imageID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "image not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch image", err))
			return
		}

		var product models.Product
		if err := db.First(&product, image.ProductID).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch product", err))
			return
		}
		if !middleware.IsStaff(c) && (product.UserID == nil || *product.UserID != userID) {
			apperrors.Respond(c, apperrors.New(apperrors.KindForbidden, "not authorized to delete this image"))
			return
		}

		if err := db.Delete(&image).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to delete image", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
	}
}
