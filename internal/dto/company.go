package dto

import (
	"time"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required,max=150"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
	Email       string `json:"email" binding:"required,email"`
	Address     string `json:"address" binding:"omitempty,max=250"`
}

// UpdateCompanyRequest defines data for updating a company.
type UpdateCompanyRequest struct {
	CompanyID   string `json:"companyID" binding:"required,uuid"`
	CompanyName string `json:"companyName" binding:"omitempty,max=150"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address" binding:"omitempty,max=250"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID   string    `json:"companyID"`
	UserID      string    `json:"userID"`
	CompanyName string    `json:"companyName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:   c.CompanyID,
		UserID:      c.UserID,
		CompanyName: c.CompanyName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCompanyResponseSlice converts a slice of domain companies to DTOs.
func ToCompanyResponseSlice(cs []domain.Company) []CompanyResponse {
	list := make([]CompanyResponse, len(cs))
	for i := range cs {
		list[i] = ToCompanyResponse(&cs[i])
	}
	return list
}
