package cartControllers

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

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty"`
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var items []models.CartItem
		if err := db.
			Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch cart", err))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/cart — adding an item already in the cart accumulates its qty.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid cart payload", err))
			return
		}
		qty := input.Qty
		if qty <= 0 {
			qty = 1
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

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{UserID: userID, ProductID: product.ID, Qty: qty}
			if err := db.Create(&item).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to add item to cart", err))
				return
			}
		case err != nil:
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch cart item", err))
			return
		default:
			item.Qty += qty
			if err := db.Model(&item).Update("qty", item.Qty).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update cart item", err))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
	}
}

// PUT /user/cart — sets an existing item's qty outright.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid cart payload", err))
			return
		}
		if input.Qty < 1 {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "quantity must be at least 1"))
			return
		}

		var item models.CartItem
		if err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "cart item not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch cart item", err))
			return
		}

		if err := db.Model(&item).Update("qty", input.Qty).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update cart item", err))
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid product id"))
			return
		}

		res := db.Where("user_id = ? AND product_id = ?", userID, uint(productID)).Delete(&models.CartItem{})
		if res.Error != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to delete item", res.Error))
			return
		}
		if res.RowsAffected == 0 {
			apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "cart item not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// DELETE /user/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to clear cart", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
