package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

type UpdateProductRequest struct {
	Name           *string                `json:"name"`
	Brand          *string                `json:"brand"`
	Description    *string                `json:"description"`
	Price          *decimal.Decimal       `json:"price"`
	DiscountPrice  *decimal.Decimal       `json:"discount_price"`
	CountInStock   *int                   `json:"countInStock"`
	CategoryID     *uint                  `json:"category"`
	Image          *string                `json:"image"`
	Tags           []string               `json:"tags"`
	ApprovalStatus *models.ApprovalStatus `json:"approval_status"`
}

// UpdateProduct edits a product. Allowed for its vendor or for staff; only
// staff may change the approval status. Edits never touch historical order
// item snapshots.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
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

		isStaff := middleware.IsStaff(c)
		if !isStaff && (product.UserID == nil || *product.UserID != userID) {
			apperrors.Respond(c, apperrors.New(apperrors.KindForbidden, "not authorized to edit this product"))
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid product payload", err))
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Brand != nil {
			updates["brand"] = *req.Brand
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			if req.Price.IsNegative() {
				apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "price cannot be negative"))
				return
			}
			updates["price"] = *req.Price
		}
		if req.DiscountPrice != nil {
			if req.DiscountPrice.IsNegative() {
				apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "discount price cannot be negative"))
				return
			}
			updates["discount_price"] = *req.DiscountPrice
		}
		if req.CountInStock != nil {
			if *req.CountInStock < 0 {
				apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "stock count cannot be negative"))
				return
			}
			updates["count_in_stock"] = *req.CountInStock
		}
		if req.CategoryID != nil {
			updates["category_id"] = *req.CategoryID
		}
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if isStaff && req.ApprovalStatus != nil {
			updates["approval_status"] = *req.ApprovalStatus
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if len(updates) > 0 {
				if err := tx.Model(&product).Updates(updates).Error; err != nil {
					return err
				}
			}
			if req.Tags != nil {
				if err := tx.Model(&product).Association("Tags").Clear(); err != nil {
					return err
				}
				return attachTags(tx, &product, req.Tags)
			}
			return nil
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update product", err))
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
