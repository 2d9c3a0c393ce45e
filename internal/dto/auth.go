package dto

import (
	"time"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// RegisterRequest defines data for registering a new user.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Surname     string `json:"surname" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines credentials for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the raw refresh token to exchange.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse is returned by the auth endpoints.
type AuthResponse struct {
	UserID               string    `json:"userID"`
	Name                 string    `json:"name"`
	Surname              string    `json:"surname"`
	Email                string    `json:"email"`
	Role                 string    `json:"role"`
	AccessToken          string    `json:"accessToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
	RefreshToken         string    `json:"refreshToken,omitempty"`
}

// ToAuthResponse builds an AuthResponse from a user and freshly issued tokens.
func ToAuthResponse(u *domain.User, accessToken string, accessExpiry time.Time, refreshToken string) AuthResponse {
	return AuthResponse{
		UserID:               u.UserID,
		Name:                 u.Name,
		Surname:              u.Surname,
		Email:                u.Email,
		Role:                 string(u.Role),
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExpiry,
		RefreshToken:         refreshToken,
	}
}
