package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

type CreateProductRequest struct {
	Name           string                `json:"name" binding:"required"`
	Brand          string                `json:"brand"`
	Description    string                `json:"description"`
	Price          decimal.Decimal       `json:"price" binding:"required"`
	DiscountPrice  decimal.Decimal       `json:"discount_price"`
	CountInStock   int                   `json:"countInStock"`
	CategoryID     *uint                 `json:"category"`
	Image          string                `json:"image"`
	Images         []string              `json:"images"`
	Tags           []string              `json:"tags"`
	ApprovalStatus models.ApprovalStatus `json:"approval_status"`
}

// CreateProduct registers a vendor's product. Only staff may choose the
// approval status; everyone else starts at pending.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid product payload", err))
			return
		}
		if req.Price.IsNegative() || req.DiscountPrice.IsNegative() {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "prices cannot be negative"))
			return
		}
		if req.CountInStock < 0 {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "stock count cannot be negative"))
			return
		}

		approval := models.ApprovalPending
		if middleware.IsStaff(c) && req.ApprovalStatus != "" {
			approval = req.ApprovalStatus
		}

		product := models.Product{
			UserID:         &userID,
			CategoryID:     req.CategoryID,
			Name:           req.Name,
			Brand:          req.Brand,
			Description:    req.Description,
			Price:          req.Price,
			DiscountPrice:  req.DiscountPrice,
			CountInStock:   req.CountInStock,
			Image:          req.Image,
			ApprovalStatus: approval,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			for _, img := range req.Images {
				if err := tx.Create(&models.ProductImage{ProductID: product.ID, Image: img}).Error; err != nil {
					return err
				}
			}
			return attachTags(tx, &product, req.Tags)
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to create product", err))
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// attachTags resolves tag names to rows, creating missing ones, and links
// them to the product.
func attachTags(tx *gorm.DB, product *models.Product, names []string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&tag, models.Tag{Name: name}).Error; err != nil {
			return err
		}
		if err := tx.Model(product).Association("Tags").Append(&tag); err != nil {
			return err
		}
	}
	return nil
}
