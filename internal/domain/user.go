package domain

import "time"

// Role represents a user's authorization tag
type Role string

const (
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleVendor || r == RoleAdmin
}

// User represents a registered account.
// RefreshToken is a single slot: it always holds the token minted during
// the most recent successful login or registration, or "" when none has
// been issued. Renewal overwrites it wholesale; no history is kept.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
