package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Ram45016/water-purifier-api/internal/domain"
)

func TestRegisterRequest_ValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "vendor@example.com", true},
		{"subdomain", "a.b@mail.example.co.uk", true},
		{"plus tag", "vendor+shop@example.com", true},
		{"missing at", "vendorexample.com", false},
		{"missing domain", "vendor@", false},
		{"missing tld", "vendor@example", false},
		{"spaces", "vendor @example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &RegisterRequest{Email: tt.email}
			valid, msg := req.ValidateEmail()
			if valid != tt.valid {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, valid, tt.valid)
			}
			if !tt.valid && msg == "" {
				t.Error("expected a message for invalid email")
			}
		})
	}
}

func TestNewUserResponse_OmitsSecrets(t *testing.T) {
	now := time.Now()
	user := &domain.User{
		ID:           "user-1",
		Email:        "vendor@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         domain.RoleVendor,
		RefreshToken: "some-refresh-token",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	resp := NewUserResponse(user)
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(data)
	if strings.Contains(body, "secret") {
		t.Error("response leaks password hash")
	}
	if strings.Contains(body, "some-refresh-token") {
		t.Error("response leaks refresh token")
	}
	if !strings.Contains(body, `"email":"vendor@example.com"`) {
		t.Errorf("missing email, body: %s", body)
	}
	if !strings.Contains(body, `"role":"vendor"`) {
		t.Errorf("missing role, body: %s", body)
	}
}

func TestDomainUser_JSONNeverLeaksSecrets(t *testing.T) {
	user := &domain.User{
		ID:           "user-1",
		Email:        "vendor@example.com",
		PasswordHash: "$2a$10$secret",
		RefreshToken: "some-refresh-token",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(data)
	if strings.Contains(body, "secret") {
		t.Error("user JSON leaks password hash")
	}
	if strings.Contains(body, "some-refresh-token") {
		t.Error("user JSON leaks refresh token")
	}
}
