package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ram45016/water-purifier-api/internal/dto"
	"github.com/Ram45016/water-purifier-api/internal/service"
	"github.com/Ram45016/water-purifier-api/pkg/logger"
	"github.com/Ram45016/water-purifier-api/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	log         *logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	if valid, msg := req.ValidateEmail(); !valid {
		response.BadRequest(c, msg)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.Error(c, http.StatusBadRequest, response.CodeEmailExists, "Email already registered")
			return
		}
		h.log.Error("register failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidCredentials, "Invalid email or password")
		case errors.Is(err, service.ErrStoredTokenInvalid):
			response.Forbidden(c, response.CodeInvalidStoredToken, "Stored refresh token is invalid, please contact support")
		default:
			h.log.Error("login failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /api/auth/refresh. An absent token is an
// authentication failure (401), not a malformed request; that covers
// an empty body too, so an EOF from binding falls through to the
// missing-token branch. Everything else that goes wrong with the
// token itself is 403.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if req.RefreshToken == "" {
		response.Unauthorized(c, response.CodeMissingToken, "Refresh token is required")
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshTokenExpired):
			response.Forbidden(c, response.CodeTokenExpired, "Refresh token expired, please login again")
		case errors.Is(err, service.ErrInvalidRefreshToken):
			response.Forbidden(c, response.CodeInvalidToken, "Invalid refresh token")
		case errors.Is(err, service.ErrRefreshTokenMismatch):
			response.Forbidden(c, response.CodeInvalidToken, "Refresh token does not match")
		case errors.Is(err, service.ErrUserNotFound):
			response.Forbidden(c, response.CodeUserNotFound, "User not found")
		default:
			h.log.Error("refresh failed", zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
