package models

import (
	"time"

	"gorm.io/gorm"
)

// Known role tags. The column itself is a free-form string so operators can
// introduce new roles without a schema change.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	Name         string    `json:"name" gorm:"size:255;not null"`
	Address      string    `json:"address" gorm:"size:255"`
	PhoneNo      string    `json:"phone_no" gorm:"size:20"`
	Role         string    `json:"role" gorm:"size:50;not null;default:'customer'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is a GORM hook that runs before creating a user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

// UserCreate represents the request structure for creating a user
type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"pw" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	PhoneNo  string `json:"phone_no"`
	Role     string `json:"role"`
}
