package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// CreateAccountRequest defines data for creating a customer account.
type CreateAccountRequest struct {
	CompanyID   string `json:"companyID" binding:"required,uuid"`
	AccountName string `json:"accountName" binding:"required,max=150"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
	Email       string `json:"email" binding:"required,email"`
	Address     string `json:"address" binding:"omitempty,max=250"`
}

// UpdateAccountRequest defines data for updating a customer account.
type UpdateAccountRequest struct {
	CompanyID   string `json:"companyID" binding:"required,uuid"`
	AccountID   string `json:"accountID" binding:"required,uuid"`
	AccountName string `json:"accountName" binding:"omitempty,max=150"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address" binding:"omitempty,max=250"`
}

// AccountResponse defines data returned for a customer account.
type AccountResponse struct {
	AccountID   string          `json:"accountID"`
	CompanyID   string          `json:"companyID"`
	AccountName string          `json:"accountName"`
	PhoneNumber string          `json:"phoneNumber"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToAccountResponse converts domain.Account to DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		AccountName: a.AccountName,
		PhoneNumber: a.PhoneNumber,
		Email:       a.Email,
		Address:     a.Address,
		Balance:     a.Balance,
		CreatedAt:   a.CreatedAt,
	}
}

// ToAccountResponseSlice converts a slice of domain accounts to DTOs.
func ToAccountResponseSlice(as []domain.Account) []AccountResponse {
	list := make([]AccountResponse, len(as))
	for i := range as {
		list[i] = ToAccountResponse(&as[i])
	}
	return list
}
