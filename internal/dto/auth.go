package dto

import (
	"regexp"

	"github.com/Ram45016/water-purifier-api/internal/domain"
)

// RegisterRequest represents a registration request.
// Role is optional; anything other than "vendor" or "admin"
// (case-insensitive) falls back to "vendor".
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func (r *RegisterRequest) ValidateEmail() (bool, string) {
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a refresh-token exchange request.
// The token is checked for presence in the handler so that an absent
// token maps to 401 rather than a generic binding error.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse is the public view of a user; it never carries the
// password hash or the stored refresh token.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUserResponse converts a domain user to its public view
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// RegisterResponse is the body returned on successful registration
type RegisterResponse struct {
	Message      string       `json:"message"`
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// LoginResponse is the body returned on successful login
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
	Email        string `json:"email"`
}

// RefreshResponse is the body returned on successful token exchange
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
