package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ram45016/water-purifier-api/internal/domain"
	"github.com/Ram45016/water-purifier-api/internal/dto"
	"github.com/Ram45016/water-purifier-api/internal/repository"
	"github.com/Ram45016/water-purifier-api/internal/token"
	"github.com/Ram45016/water-purifier-api/pkg/telemetry"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStoredTokenInvalid means the refresh token sitting in the user's
	// slot failed verification for a reason other than expiry. Minting a
	// replacement would mask store corruption, so login refuses instead.
	ErrStoredTokenInvalid   = errors.New("stored refresh token invalid")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenMismatch = errors.New("refresh token does not match stored token")
	ErrUserNotFound         = errors.New("user not found")
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	BcryptCost int
	// AllowAdminSignup permits self-registration with the admin role.
	// When false, admin requests silently fall back to vendor.
	AllowAdminSignup bool
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a user and issues an initial token pair
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	// Login authenticates a user and returns tokens
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Refresh exchanges a refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	config   *AuthServiceConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, config *AuthServiceConfig) AuthService {
	if config == nil {
		config = &AuthServiceConfig{}
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		config:   config,
	}
}

// Register creates a user and issues an initial token pair
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.register")
	defer span.End()

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         s.normalizeRole(req.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.MintAccess(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.MintRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message:      "User registered successfully",
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login authenticates a user and returns tokens. The refresh token in
// the user's stored slot is renewed only when absent or expired; a
// still-valid stored token is returned as-is so concurrent sessions
// share one refresh token.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.MintAccess(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken := user.RefreshToken
	renew := false
	if refreshToken == "" {
		renew = true
	} else {
		switch s.tokens.RefreshFreshness(refreshToken) {
		case token.RefreshValid:
			// Keep the stored token.
		case token.RefreshExpired:
			renew = true
		case token.RefreshInvalid:
			return nil, ErrStoredTokenInvalid
		}
	}

	if renew {
		refreshToken, err = s.tokens.MintRefresh(user.ID)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
			return nil, err
		}
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         string(user.Role),
		Email:        user.Email,
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token itself is never rotated here; rotation happens only through login.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.refresh")
	defer span.End()

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return nil, ErrRefreshTokenExpired
		}
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// The presented token must be the one in the stored slot; a stale
	// token from before a renewal is rejected even if well-signed.
	if user.RefreshToken != refreshToken {
		return nil, ErrRefreshTokenMismatch
	}

	accessToken, err := s.tokens.MintAccess(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// normalizeRole lowercases the requested role and falls back to vendor
// for anything unknown or disallowed.
func (s *authService) normalizeRole(requested string) domain.Role {
	role := domain.Role(strings.ToLower(requested))
	if !role.IsValid() {
		return domain.RoleVendor
	}
	if role == domain.RoleAdmin && !s.config.AllowAdminSignup {
		return domain.RoleVendor
	}
	return role
}
