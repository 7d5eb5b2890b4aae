package models

import "time"

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeVendor   UserType = "vendor"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `gorm:"default:false" json:"is_staff"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Profile   Profile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile holds the customer/vendor details attached to every user.
// It is created explicitly by the registration workflow, never lazily.
type Profile struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	UserType       UserType   `gorm:"type:VARCHAR(10);default:'customer'" json:"user_type"`
	Phone          string     `gorm:"index" json:"phone"`
	BirthDate      *time.Time `json:"birth_date"`
	City           string     `json:"city"`
	Country        string     `json:"country"`
	ProfilePicture string     `json:"profile_picture"`
}
