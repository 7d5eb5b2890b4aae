package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// statusRank orders the forward progression of an order. Cancelled and
// Delivered are terminal.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another. Forward moves only; Cancelled is reachable from any
// non-terminal state and is itself terminal.
func CanTransition(from, to OrderStatus) bool {
	if from == OrderStatusCancelled || from == OrderStatusDelivered {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   *uint  `gorm:"index" json:"user_id"`
	OrderRef string `gorm:"uniqueIndex" json:"order_ref"`

	PaymentMethod string `json:"payment_method"`

	TaxPrice      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"tax_price"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"shipping_price"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_price"`

	Status OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`

	IsPaid bool       `gorm:"default:false" json:"is_paid"`
	PaidAt *time.Time `json:"paid_at"`

	IsDelivered bool       `gorm:"default:false" json:"is_delivered"`
	DeliveredAt *time.Time `json:"delivered_at"`

	User            *User            `json:"user,omitempty"`
	Items           []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress *ShippingAddress `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping_address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem snapshots the product at purchase time. Later edits to the
// product never change what the customer was charged.
type OrderItem struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	OrderID   uint  `gorm:"index;not null" json:"order_id"`
	ProductID *uint `gorm:"index" json:"product_id"`

	Name  string          `json:"name"`
	Qty   int             `gorm:"default:1" json:"qty"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image string          `json:"image"`
}

type ShippingAddress struct {
	OrderID    uint   `gorm:"primaryKey" json:"order_id"`
	Address    string `gorm:"not null" json:"address"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `gorm:"not null" json:"country"`
}
