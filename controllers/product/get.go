package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// GetProductByID returns a single product with its category, gallery,
// reviews and tags.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid product id"))
			return
		}

		var product models.Product
		if err := db.
			Preload("Category").
			Preload("Images").
			Preload("Reviews").
			Preload("Tags").
			First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "product not found"))
			} else {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to retrieve product", err))
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetTopProducts returns the five best-rated products (rating >= 4).
func GetTopProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Where("rating >= ? AND approval_status = ?", 4, models.ApprovalApproved).
			Order("rating DESC").
			Limit(5).
			Find(&products).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch top products", err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetMyProducts lists the authenticated vendor's own products.
func GetMyProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var products []models.Product
		if err := db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch products", err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductsByCategory groups approved products under each category that
// has any.
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch categories", err))
			return
		}

		data := make([]gin.H, 0, len(categories))
		for _, cat := range categories {
			var products []models.Product
			if err := db.
				Where("category_id = ? AND approval_status = ?", cat.ID, models.ApprovalApproved).
				Order("created_at DESC").
				Find(&products).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch products", err))
				return
			}
			if len(products) > 0 {
				data = append(data, gin.H{"id": cat.ID, "name": cat.Name, "products": products})
			}
		}
		c.JSON(http.StatusOK, data)
	}
}
