package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// CreateStockRequest defines data for creating a stock item.
type CreateStockRequest struct {
	CompanyID   string          `json:"companyID" binding:"required,uuid"`
	Name        string          `json:"name" binding:"required,max=150"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        domain.Unit     `json:"unit" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description" binding:"omitempty,max=250"`
}

// UpdateStockRequest defines data for updating a stock item's details.
type UpdateStockRequest struct {
	StockID     string           `json:"stockID" binding:"required,uuid"`
	Name        string           `json:"name" binding:"omitempty,max=150"`
	Unit        domain.Unit      `json:"unit" binding:"omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description string           `json:"description" binding:"omitempty,max=250"`
}

// UpdateStockQuantityRequest defines data for the quantity-adjustment flow.
// IsAddition true moves stock in, false moves stock out.
type UpdateStockQuantityRequest struct {
	StockID    string          `json:"stockID" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	IsAddition bool            `json:"isAddition"`
}

// StockResponse defines data returned for a stock item.
type StockResponse struct {
	StockID     string          `json:"stockID"`
	CompanyID   string          `json:"companyID"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        domain.Unit     `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToStockResponse converts domain.Stock to DTO.
func ToStockResponse(s *domain.Stock) StockResponse {
	return StockResponse{
		StockID:     s.StockID,
		CompanyID:   s.CompanyID,
		Name:        s.Name,
		Quantity:    s.Quantity,
		Unit:        s.Unit,
		Price:       s.Price,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// ToStockResponseSlice converts a slice of domain stocks to DTOs.
func ToStockResponseSlice(ss []domain.Stock) []StockResponse {
	list := make([]StockResponse, len(ss))
	for i := range ss {
		list[i] = ToStockResponse(&ss[i])
	}
	return list
}
