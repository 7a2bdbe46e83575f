package token

import (
	"errors"
	"testing"
	"time"
)

func newTestManager(accessTTL, refreshTTL time.Duration) *Manager {
	return NewManager(&Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	})
}

func TestManager_MintAndVerifyAccess(t *testing.T) {
	m := newTestManager(15*time.Minute, 7*24*time.Hour)

	tok, err := m.MintAccess("user-1", "a@x.com", "vendor")
	if err != nil {
		t.Fatalf("MintAccess() error = %v", err)
	}

	claims, err := m.VerifyAccess(tok)
	if err != nil {
		t.Fatalf("VerifyAccess() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want a@x.com", claims.Email)
	}
	if claims.Role != "vendor" {
		t.Errorf("Role = %q, want vendor", claims.Role)
	}
}

func TestManager_MintAndVerifyRefresh(t *testing.T) {
	m := newTestManager(15*time.Minute, 7*24*time.Hour)

	tok, err := m.MintRefresh("user-1")
	if err != nil {
		t.Fatalf("MintRefresh() error = %v", err)
	}

	claims, err := m.VerifyRefresh(tok)
	if err != nil {
		t.Fatalf("VerifyRefresh() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
}

func TestManager_SeparateSecrets(t *testing.T) {
	m := newTestManager(15*time.Minute, 7*24*time.Hour)

	// An access token must never verify as a refresh token and vice versa
	access, _ := m.MintAccess("user-1", "a@x.com", "vendor")
	if _, err := m.VerifyRefresh(access); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyRefresh(access token) error = %v, want ErrTokenInvalid", err)
	}

	refresh, _ := m.MintRefresh("user-1")
	if _, err := m.VerifyAccess(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyAccess(refresh token) error = %v, want ErrTokenInvalid", err)
	}
}

func TestManager_ExpiredReportedAsExpired(t *testing.T) {
	// Negative TTL produces an already-expired token
	expired := newTestManager(-time.Minute, -time.Minute)

	access, err := expired.MintAccess("user-1", "a@x.com", "vendor")
	if err != nil {
		t.Fatalf("MintAccess() error = %v", err)
	}
	if _, err := expired.VerifyAccess(access); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyAccess(expired) error = %v, want ErrTokenExpired", err)
	}

	refresh, err := expired.MintRefresh("user-1")
	if err != nil {
		t.Fatalf("MintRefresh() error = %v", err)
	}
	if _, err := expired.VerifyRefresh(refresh); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyRefresh(expired) error = %v, want ErrTokenExpired", err)
	}
}

func TestManager_TamperedReportedAsInvalid(t *testing.T) {
	m := newTestManager(15*time.Minute, 7*24*time.Hour)
	other := NewManager(&Config{
		AccessSecret:  "rotated-access-secret",
		RefreshSecret: "rotated-refresh-secret",
	})

	tok, _ := other.MintRefresh("user-1")
	if _, err := m.VerifyRefresh(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyRefresh(wrong secret) error = %v, want ErrTokenInvalid", err)
	}

	if _, err := m.VerifyRefresh("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("VerifyRefresh(garbage) error = %v, want ErrTokenInvalid", err)
	}
}

func TestManager_RefreshFreshness(t *testing.T) {
	m := newTestManager(15*time.Minute, 7*24*time.Hour)
	expired := newTestManager(15*time.Minute, -time.Minute)
	rotated := NewManager(&Config{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "rotated-refresh-secret",
	})

	valid, _ := m.MintRefresh("user-1")
	expiredTok, _ := expired.MintRefresh("user-1")
	foreignTok, _ := rotated.MintRefresh("user-1")

	tests := []struct {
		name  string
		token string
		want  Freshness
	}{
		{"valid token", valid, RefreshValid},
		{"expired token", expiredTok, RefreshExpired},
		{"foreign secret", foreignTok, RefreshInvalid},
		{"garbage", "garbage", RefreshInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.RefreshFreshness(tt.token); got != tt.want {
				t.Errorf("RefreshFreshness() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewManager_DefaultTTLs(t *testing.T) {
	m := NewManager(&Config{
		AccessSecret:  "a",
		RefreshSecret: "r",
	})
	if m.accessTTL != 15*time.Minute {
		t.Errorf("accessTTL = %v, want 15m", m.accessTTL)
	}
	if m.refreshTTL != 7*24*time.Hour {
		t.Errorf("refreshTTL = %v, want 168h", m.refreshTTL)
	}
}
