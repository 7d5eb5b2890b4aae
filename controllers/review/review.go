package reviewControllers

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

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// refreshProductRating recomputes the denormalized rating average and
// review count after any review write.
func refreshProductRating(tx *gorm.DB, productID uint) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(id) AS count").
		Where("product_id = ?", productID).
		Scan(&stats).Error; err != nil {
		return err
	}
	return tx.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"rating":      stats.Avg,
		"num_reviews": stats.Count,
	}).Error
}

// POST /products/:id/reviews — one review per user per product.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
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

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid review payload", err))
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5"))
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

		var existing int64
		if err := db.Model(&models.Review{}).
			Where("product_id = ? AND user_id = ?", product.ID, userID).
			Count(&existing).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to check reviews", err))
			return
		}
		if existing > 0 {
			apperrors.Respond(c, apperrors.New(apperrors.KindConflict, "product already reviewed"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			review := models.Review{
				ProductID: product.ID,
				UserID:    &userID,
				Rating:    input.Rating,
				Comment:   input.Comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			return refreshProductRating(tx, product.ID)
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to create review", err))
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
	}
}

// PUT /products/:id/reviews
func UpdateReview(db *gorm.DB) gin.HandlerFunc {
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

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid review payload", err))
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5"))
			return
		}

		var review models.Review
		if err := db.Where("product_id = ? AND user_id = ?", uint(productID), userID).First(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "review not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch review", err))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&review).Updates(map[string]interface{}{
				"rating":  input.Rating,
				"comment": input.Comment,
			}).Error; err != nil {
				return err
			}
			return refreshProductRating(tx, review.ProductID)
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update review", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
	}
}
