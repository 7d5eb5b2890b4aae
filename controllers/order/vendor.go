package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// VendorOrderItem is one sold line item with the order facts a vendor needs
// to fulfil it.
type VendorOrderItem struct {
	ID          uint            `json:"id"`
	OrderID     uint            `json:"order_id"`
	Name        string          `json:"name"`
	Qty         int             `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
	IsPaid      bool            `json:"is_paid"`
	IsDelivered bool            `json:"is_delivered"`
}

// GetVendorOrders lists every order line containing one of the vendor's
// products, newest first. Non-vendor accounts are rejected.
func GetVendorOrders(db *gorm.DB, vendorID uint) ([]VendorOrderItem, error) {
	var isVendor int64
	if err := db.Model(&models.Profile{}).
		Where("user_id = ? AND user_type = ?", vendorID, models.UserTypeVendor).
		Count(&isVendor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch vendor orders", err)
	}
	if isVendor == 0 {
		return nil, apperrors.New(apperrors.KindForbidden, "not authorized as a vendor")
	}

	var rows []struct {
		ID          uint
		OrderID     uint
		Name        string
		Qty         int
		Price       decimal.Decimal
		CreatedAt   time.Time
		IsPaid      bool
		IsDelivered bool
	}
	if err := db.Model(&models.OrderItem{}).
		Select(`order_items.id, order_items.order_id, order_items.name, order_items.qty,
			order_items.price, orders.created_at, orders.is_paid, orders.is_delivered`).
		Joins("JOIN products ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("products.user_id = ?", vendorID).
		Order("order_items.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch vendor orders", err)
	}

	items := make([]VendorOrderItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, VendorOrderItem{
			ID:          r.ID,
			OrderID:     r.OrderID,
			Name:        r.Name,
			Qty:         r.Qty,
			Price:       r.Price,
			TotalPrice:  LineTotal(r.Price, r.Qty),
			CreatedAt:   r.CreatedAt,
			IsPaid:      r.IsPaid,
			IsDelivered: r.IsDelivered,
		})
	}
	return items, nil
}

// GET /orders/vendor
func GetVendorOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		items, err := GetVendorOrders(db, userID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
