package dto

import (
	"time"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// UpdateUserRequest defines data for updating the caller's own profile.
// Zero-valued fields are left untouched.
type UpdateUserRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Surname     string `json:"surname" binding:"omitempty,max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID      string    `json:"userID"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Surname:     u.Surname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}

// ToUserResponseSlice converts a slice of domain users to DTOs.
func ToUserResponseSlice(us []domain.User) []UserResponse {
	list := make([]UserResponse, len(us))
	for i := range us {
		list[i] = ToUserResponse(&us[i])
	}
	return list
}
