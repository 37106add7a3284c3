package models

import (
	"time"
)

type UserRole string

const (
	RoleGuest    UserRole = "guest"
	RoleCustomer UserRole = "customer"
	RoleStore    UserRole = "store"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleStore:
		return true
	}
	return false
}

// User is a locally selected identity. There is no credential behind it.
type User struct {
	ID        string    `json:"id"`
	Role      UserRole  `json:"role"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginInput struct {
	ID   string   `json:"id,omitempty" validate:"omitempty,max=64"`
	Role UserRole `json:"role" validate:"required,oneof=guest customer store"`
	Name string   `json:"name,omitempty" validate:"max=64"`
}
