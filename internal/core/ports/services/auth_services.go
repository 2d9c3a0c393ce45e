package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// AuthSvcFacade defines the authentication operations.
type AuthSvcFacade interface {
	// Register creates a new user with the given role and issues tokens.
	Register(ctx context.Context, req dto.RegisterRequest, role domain.UserRole) (*dto.AuthResponse, error)

	// Login verifies credentials, rotates the refresh token and issues tokens.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*dto.AuthResponse, error)
}
