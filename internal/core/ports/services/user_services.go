package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users. Admin only.
	ListUsers(ctx context.Context, callerRole domain.UserRole) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdateUser updates the caller's own profile with per-field checks.
	UpdateUser(ctx context.Context, callerID string, req dto.UpdateUserRequest) (*domain.User, error)

	// SoftDeleteUser tombstones a user. Admin only.
	SoftDeleteUser(ctx context.Context, targetUserID string, callerID string, callerRole domain.UserRole) error

	// DeleteUser removes a user permanently. Admin only.
	DeleteUser(ctx context.Context, targetUserID string, callerRole domain.UserRole) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
