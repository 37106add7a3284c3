package helpers

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/streetbite/internal/models"
)

// SessionClaims carries the locally selected role. Nothing is verified
// against a user directory; the signature only stops clients from editing
// the role after the fact.
type SessionClaims struct {
	Role models.UserRole `json:"role"`
	Name string          `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (sc *SessionClaims) UserID() string {
	return sc.Subject
}

func (sc *SessionClaims) IsGuest() bool {
	return sc.Role == "" || sc.Role == models.RoleGuest
}

func (sc *SessionClaims) IsCustomer() bool {
	return sc.Role == models.RoleCustomer
}

func (sc *SessionClaims) IsStoreOwner() bool {
	return sc.Role == models.RoleStore
}

func (sc *SessionClaims) HasRole(role models.UserRole) bool {
	return sc.Role == role
}

func (sc *SessionClaims) IsOwner(userID string) bool {
	return sc.Subject != "" && sc.Subject == userID
}

func (sc *SessionClaims) GetSafeRole() models.UserRole {
	if sc.Role == "" {
		return models.RoleGuest
	}
	return sc.Role
}

// DisplayName falls back to a role based label when the user gave no name.
func (sc *SessionClaims) DisplayName() string {
	if sc.Name != "" {
		return sc.Name
	}
	switch sc.Role {
	case models.RoleStore:
		return "store owner"
	case models.RoleCustomer:
		return "customer"
	}
	return "guest"
}

func (sc *SessionClaims) User() models.User {
	u := models.User{ID: sc.Subject, Role: sc.GetSafeRole(), Name: sc.Name}
	if sc.IssuedAt != nil {
		u.CreatedAt = sc.IssuedAt.Time
	}
	return u
}

// GuestClaims is what requests without a session act as.
func GuestClaims() *SessionClaims {
	return &SessionClaims{Role: models.RoleGuest}
}
