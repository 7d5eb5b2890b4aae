package adminController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// ListPendingProducts returns all products awaiting approval.
func ListPendingProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Product
		if err := db.Where("approval_status = ?", models.ApprovalPending).
			Order("created_at DESC").Find(&pending).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch pending products", err))
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func SetProductApproval(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid product id"))
			return
		}

		var req struct {
			ApprovalStatus models.ApprovalStatus `json:"approval_status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid approval payload", err))
			return
		}
		switch req.ApprovalStatus {
		case models.ApprovalApproved, models.ApprovalRejected, models.ApprovalPending:
		default:
			apperrors.Respond(c, apperrors.Newf(apperrors.KindValidation, "invalid approval status: %s", req.ApprovalStatus))
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

		if err := db.Model(&product).Update("approval_status", req.ApprovalStatus).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update product approval", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product approval updated"})
	}
}
