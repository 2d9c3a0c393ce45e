package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
	userEmailKey = contextKey("userEmail")
)

// GetLoggerFromCtx retrieves the request-scoped logger from the standard
// context. It returns the default logger if none is present.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromContext retrieves the authenticated user ID for the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role for the
// request, defaulting to the regular user role when absent.
func GetUserRoleFromContext(c *gin.Context) domain.UserRole {
	if role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole); ok {
		return role
	}
	return domain.RoleUser
}

// GetUserEmailFromContext retrieves the authenticated user's email for the request.
func GetUserEmailFromContext(c *gin.Context) string {
	email, _ := c.Request.Context().Value(userEmailKey).(string)
	return email
}
