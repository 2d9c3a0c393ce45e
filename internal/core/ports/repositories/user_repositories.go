package repositories

import (
	"context"
	"time"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByPhoneNumber retrieves a non-deleted user by phone number.
	FindUserByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error)

	// FindUserByRefreshTokenHash retrieves the user holding the given refresh token hash.
	FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error)

	// ListUsers retrieves all non-deleted users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores a new refresh token hash and expiry for a
	// user. An empty hash with a nil expiry clears the stored token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time) error

	// MarkUserDeleted tombstones a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error

	// DeleteUser removes a user row permanently.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
