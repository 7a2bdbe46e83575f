package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned for a well-signed token whose expiry
	// has elapsed. Callers rely on distinguishing this from ErrTokenInvalid
	// to drive re-login behavior.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for any other verification failure:
	// bad signature, wrong algorithm, malformed token.
	ErrTokenInvalid = errors.New("token invalid")
)

// Freshness is the outcome of checking a stored refresh token.
type Freshness int

const (
	// RefreshValid means the token verifies and has not expired.
	RefreshValid Freshness = iota
	// RefreshExpired means the token is well-signed but past its expiry.
	RefreshExpired
	// RefreshInvalid means verification failed for a reason other than
	// expiry: store corruption or a secret rotation, not recoverable
	// by minting a replacement.
	RefreshInvalid
)

// AccessClaims are the claims carried by an access token.
type AccessClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims carried by a refresh token.
type RefreshClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Config holds token manager settings
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Manager mints and verifies the two token classes. Access and refresh
// tokens use separate secrets so one can be rotated without the other.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewManager creates a Manager, applying the default TTLs (15m access,
// 7d refresh) where the config leaves them zero.
func NewManager(cfg *Config) *Manager {
	accessTTL := cfg.AccessTTL
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := cfg.RefreshTTL
	if refreshTTL == 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &Manager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// MintAccess creates a signed access token carrying identity and role.
func (m *Manager) MintAccess(userID, email, role string) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessSecret)
}

// MintRefresh creates a signed refresh token carrying identity only.
func (m *Manager) MintRefresh(userID string) (string, error) {
	now := time.Now()
	claims := &RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.refreshSecret)
}

// VerifyAccess validates an access token and returns its claims.
func (m *Manager) VerifyAccess(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := m.verify(tokenString, claims, m.accessSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// VerifyRefresh validates a refresh token and returns its claims.
func (m *Manager) VerifyRefresh(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := m.verify(tokenString, claims, m.refreshSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

// RefreshFreshness classifies a stored refresh token as an explicit
// tagged outcome so the three-way login branch stays exhaustive.
// The absent case (empty slot) is the caller's to handle.
func (m *Manager) RefreshFreshness(tokenString string) Freshness {
	_, err := m.VerifyRefresh(tokenString)
	switch {
	case err == nil:
		return RefreshValid
	case errors.Is(err, ErrTokenExpired):
		return RefreshExpired
	default:
		return RefreshInvalid
	}
}

func (m *Manager) verify(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
