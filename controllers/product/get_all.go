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

const pageSize = 8

// GetProducts lists the catalog with keyword search, category filter and
// pagination. Non-staff callers only ever see approved products.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("keyword")
		categoryID := c.Query("category")

		query := db.Model(&models.Product{}).Preload("Category").Order("products.created_at DESC")

		if keyword != "" {
			likePattern := "%" + keyword + "%"
			query = query.
				Joins("LEFT JOIN categories ON categories.id = products.category_id").
				Where(`products.name LIKE ? OR products.description LIKE ? OR products.brand LIKE ? OR categories.name LIKE ?`,
					likePattern, likePattern, likePattern, likePattern)
		}

		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid category id"))
				return
			}
			query = query.Where("products.category_id = ?", uint(cid))
		}

		if !middleware.IsStaff(c) {
			query = query.Where("products.approval_status = ?", models.ApprovalApproved)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch products", err))
			return
		}

		pages := int((total + pageSize - 1) / pageSize)
		if pages == 0 {
			pages = 1
		}
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 || page > pages {
			page = 1
		}

		var products []models.Product
		if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&products).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch products", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"page":     page,
			"pages":    pages,
		})
	}
}
