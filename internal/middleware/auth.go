package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ram45016/water-purifier-api/internal/token"
	"github.com/Ram45016/water-purifier-api/pkg/response"
)

const (
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey = "user_id"
	// UserEmailKey is the context key for the authenticated user email
	UserEmailKey = "user_email"
	// UserRoleKey is the context key for the authenticated user role
	UserRoleKey = "user_role"
)

// RequireAuth verifies the bearer access token. An absent token is 401;
// a token that is present but expired or malformed is 403.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, response.CodeMissingToken, "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.AbortError(c, http.StatusUnauthorized, response.CodeMissingToken, "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := tokens.VerifyAccess(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				response.AbortError(c, http.StatusForbidden, response.CodeTokenExpired, "Access token expired")
				return
			}
			response.AbortError(c, http.StatusForbidden, response.CodeInvalidToken, "Invalid access token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// role is in the allow set. Must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			response.AbortError(c, http.StatusForbidden, response.CodeForbidden, "Role not found in token")
			return
		}
		if _, ok := allowed[role]; !ok {
			response.AbortError(c, http.StatusForbidden, response.CodeForbidden, "Insufficient role")
			return
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	return getString(c, UserIDKey)
}

// GetUserEmail returns the authenticated user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	return getString(c, UserEmailKey)
}

// GetUserRole returns the authenticated user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	return getString(c, UserRoleKey)
}

func getString(c *gin.Context, key string) (string, bool) {
	if v, exists := c.Get(key); exists {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
