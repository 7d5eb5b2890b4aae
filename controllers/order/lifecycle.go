package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func loadOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch order", err)
	}
	return &order, nil
}

// MarkPaid records the external payment event. Idempotent: a second call is
// a no-op and the original paid_at is kept. Does not advance the status.
func MarkPaid(db *gorm.DB, orderID uint) (*models.Order, error) {
	order, err := loadOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid {
		return order, nil
	}

	now := time.Now()
	if err := db.Model(order).Updates(map[string]interface{}{
		"is_paid": true,
		"paid_at": now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to update order", err)
	}
	order.IsPaid = true
	order.PaidAt = &now
	return order, nil
}

// MarkDelivered records delivery, idempotently like MarkPaid. It does not
// require the order to be paid first: cash-on-delivery orders are delivered
// before payment is recorded.
func MarkDelivered(db *gorm.DB, orderID uint) (*models.Order, error) {
	order, err := loadOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsDelivered {
		return order, nil
	}

	now := time.Now()
	if err := db.Model(order).Updates(map[string]interface{}{
		"is_delivered": true,
		"delivered_at": now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to update order", err)
	}
	order.IsDelivered = true
	order.DeliveredAt = &now
	return order, nil
}

// UpdateOrderStatus moves an order forward through its lifecycle. Backward
// moves are rejected; Cancelled is allowed from any non-terminal state.
func UpdateOrderStatus(db *gorm.DB, orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(newStatus) {
		return nil, apperrors.Newf(apperrors.KindValidation, "invalid order status: %s", newStatus)
	}

	order, err := loadOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, newStatus) {
		return nil, apperrors.Newf(apperrors.KindValidation, "cannot transition order from %s to %s", order.Status, newStatus)
	}

	if err := db.Model(order).Update("status", newStatus).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to update order status", err)
	}
	order.Status = newStatus
	return order, nil
}

// -------- Handlers --------

func orderIDParam(c *gin.Context) (uint, bool) {
	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid order id"))
		return 0, false
	}
	return uint(orderID), true
}

func MarkPaidHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := MarkPaid(db, orderID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, gin.H{"message": "Order was paid"})
	}
}

func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := MarkDelivered(db, orderID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, gin.H{"message": "Order was delivered"})
	}
}

func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid status payload", err))
			return
		}
		order, err := UpdateOrderStatus(db, orderID, req.Status)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		broadcastOrderUpdate(*order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
