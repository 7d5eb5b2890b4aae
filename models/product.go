package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"index" json:"slug"`
	Description string `json:"description"`
}

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Product struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	UserID     *uint `gorm:"index" json:"user_id"`
	CategoryID *uint `gorm:"index" json:"category_id"`

	Name        string `gorm:"index;not null" json:"name"`
	Slug        string `gorm:"index" json:"slug"`
	Brand       string `json:"brand"`
	Description string `json:"description"`

	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null;index" json:"price"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_price"`

	CountInStock int `gorm:"default:0" json:"count_in_stock"`

	Image string `json:"image"`

	Rating     decimal.Decimal `gorm:"type:decimal(3,2);default:0" json:"rating"`
	NumReviews int             `gorm:"default:0" json:"num_reviews"`
	IsFeatured bool            `gorm:"default:false;index" json:"is_featured"`

	ApprovalStatus ApprovalStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"approval_status"`

	Category *Category      `json:"category,omitempty"`
	Tags     []Tag          `gorm:"many2many:product_tags;" json:"tags,omitempty"`
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Reviews  []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// EffectivePrice is the unit price a buyer actually pays: the discount
// price when one is set and positive, the list price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.IsPositive() {
		return p.DiscountPrice
	}
	return p.Price
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	Image     string `gorm:"not null" json:"image"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	UserID    *uint     `gorm:"uniqueIndex:idx_review_user_product" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
