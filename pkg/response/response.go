package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable error codes returned in error bodies
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidStoredToken = "INVALID_STORED_TOKEN"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorBody is the JSON error payload
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error writes a JSON error body with the given status
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// AbortError writes a JSON error body and aborts the handler chain
func AbortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest writes a 400 error
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

// NotFound writes a 404 error
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Unauthorized writes a 401 error
func Unauthorized(c *gin.Context, code, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden writes a 403 error
func Forbidden(c *gin.Context, code, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// InternalError collapses an unexpected failure to a generic 500.
// The underlying error is logged at the call site, never sent to the client.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternalError, "Server error")
}
