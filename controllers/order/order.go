package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// -------- Request Structs --------

type ShippingAddressInput struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type OrderItemInput struct {
	ProductID uint `json:"product"`
	Qty       int  `json:"qty"`
}

type PlaceOrderRequest struct {
	PaymentMethod   string               `json:"paymentMethod" binding:"required"`
	TaxPrice        decimal.Decimal      `json:"taxPrice"`
	ShippingPrice   decimal.Decimal      `json:"shippingPrice"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress"`
	OrderItems      []OrderItemInput     `json:"orderItems"`
}

// -------- Helpers --------

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func validateShippingAddress(addr ShippingAddressInput) error {
	switch {
	case addr.Address == "":
		return apperrors.New(apperrors.KindValidation, "shipping address is missing the address field")
	case addr.City == "":
		return apperrors.New(apperrors.KindValidation, "shipping address is missing the city field")
	case addr.Country == "":
		return apperrors.New(apperrors.KindValidation, "shipping address is missing the country field")
	}
	return nil
}

// -------- Core Logic --------

// PlaceOrder converts a client cart snapshot into a durable order. The whole
// order graph (order, items, shipping address) and every stock decrement
// commit together or not at all. Line items referencing products that no
// longer exist are skipped, tolerating stale client carts.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "no order items")
	}
	for _, line := range req.OrderItems {
		if line.Qty <= 0 {
			return nil, apperrors.Newf(apperrors.KindValidation, "invalid quantity %d for product %d", line.Qty, line.ProductID)
		}
	}
	if req.TaxPrice.IsNegative() || req.ShippingPrice.IsNegative() {
		return nil, apperrors.New(apperrors.KindValidation, "tax and shipping prices cannot be negative")
	}
	if err := validateShippingAddress(req.ShippingAddress); err != nil {
		return nil, err
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			UserID:        &userID,
			OrderRef:      generateOrderRef(),
			PaymentMethod: req.PaymentMethod,
			TaxPrice:      req.TaxPrice,
			ShippingPrice: req.ShippingPrice,
			TotalPrice:    decimal.Zero,
			Status:        models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperrors.Wrap(apperrors.KindPersistence, "checkout failed", err)
		}

		address := models.ShippingAddress{
			OrderID:    order.ID,
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		}
		if err := tx.Create(&address).Error; err != nil {
			return apperrors.Wrap(apperrors.KindPersistence, "checkout failed", err)
		}

		// Resolve every referenced product in one batch lookup.
		ids := make([]uint, 0, len(req.OrderItems))
		for _, line := range req.OrderItems {
			ids = append(ids, line.ProductID)
		}
		var products []models.Product
		if err := tx.Where("id IN ?", ids).Find(&products).Error; err != nil {
			return apperrors.Wrap(apperrors.KindPersistence, "checkout failed", err)
		}
		productByID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			productByID[p.ID] = p
		}

		itemsTotal := decimal.Zero
		var items []models.OrderItem

		for _, line := range req.OrderItems {
			product, found := productByID[line.ProductID]
			if !found {
				logrus.WithFields(logrus.Fields{
					"product_id": line.ProductID,
					"order_ref":  order.OrderRef,
				}).Warn("skipping order item for unknown product")
				continue
			}

			reserved, err := DecrementStock(tx, product.ID, line.Qty)
			if err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "checkout failed", err)
			}
			if !reserved {
				return apperrors.InsufficientStock(product.Name)
			}

			unitPrice := product.EffectivePrice()
			itemsTotal = itemsTotal.Add(LineTotal(unitPrice, line.Qty))

			productID := product.ID
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: &productID,
				Name:      product.Name,
				Qty:       line.Qty,
				Price:     unitPrice,
				Image:     product.Image,
			})
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "checkout failed", err)
			}
		}

		order.TotalPrice = OrderTotal(itemsTotal, req.TaxPrice, req.ShippingPrice)
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_price", order.TotalPrice).Error; err != nil {
			return apperrors.Wrap(apperrors.KindPersistence, "checkout failed", err)
		}

		order.Items = items
		order.ShippingAddress = &address
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderUpdate(order)
	return &order, nil
}

// GetOrder loads an order if the requester may see it: the owner, an admin,
// or a vendor with at least one of their products in the order.
func GetOrder(db *gorm.DB, orderID, requesterID uint, isStaff bool) (*models.Order, error) {
	var order models.Order
	if err := db.
		Preload("User").
		Preload("Items").
		Preload("ShippingAddress").
		First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch order", err)
	}

	if isStaff || (order.UserID != nil && *order.UserID == requesterID) {
		return &order, nil
	}

	var vendorItems int64
	if err := db.Model(&models.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND products.user_id = ?", orderID, requesterID).
		Count(&vendorItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch order", err)
	}
	if vendorItems == 0 {
		return nil, apperrors.New(apperrors.KindForbidden, "not authorized to view this order")
	}
	return &order, nil
}

// -------- Handlers --------

// Place order (user)
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid order payload", err))
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": order.ID, "order_ref": order.OrderRef})
	}
}

func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid order id"))
			return
		}

		order, err := GetOrder(db, uint(orderID), userID, middleware.IsStaff(c))
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// Fetch the requester's own orders, most recent first.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("ShippingAddress").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// Fetch all orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// Delete order (admin)
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid order id"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.First(&order, uint(orderID)).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.New(apperrors.KindNotFound, "order not found")
				}
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete order", err)
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete order", err)
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.ShippingAddress{}).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete order", err)
			}
			if err := tx.Delete(&order).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete order", err)
			}
			return nil
		})
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
