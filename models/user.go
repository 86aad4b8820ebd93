package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer       UserRole = "customer"
	RoleAdmin          UserRole = "admin"
	RoleDeliveryPerson UserRole = "delivery_person"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDeliveryPerson:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"index;not null"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	IsAvailable  bool      `json:"is_available"` // only meaningful for delivery persons
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
