package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// CreateStockTransactionRequest defines data for posting a stock movement
// directly, outside the receipt flow.
type CreateStockTransactionRequest struct {
	CompanyID             string                      `json:"companyID" binding:"required,uuid"`
	StockID               string                      `json:"stockID" binding:"required,uuid"`
	CounterpartyCompanyID string                      `json:"counterpartyCompanyID" binding:"omitempty,uuid"`
	Type                  domain.StockTransactionType `json:"type" binding:"required,oneof=IN OUT"`
	Quantity              decimal.Decimal             `json:"quantity" binding:"required"`
	UnitPrice             decimal.Decimal             `json:"unitPrice" binding:"required"`
	Description           string                      `json:"description" binding:"omitempty,max=250"`
}

// StockTransactionResponse defines data returned for a stock ledger line.
type StockTransactionResponse struct {
	StockTransactionID    string                      `json:"stockTransactionID"`
	CompanyID             string                      `json:"companyID"`
	StockID               string                      `json:"stockID"`
	CounterpartyCompanyID *string                     `json:"counterpartyCompanyID,omitempty"`
	Type                  domain.StockTransactionType `json:"type"`
	Quantity              decimal.Decimal             `json:"quantity"`
	UnitPrice             decimal.Decimal             `json:"unitPrice"`
	TotalPrice            decimal.Decimal             `json:"totalPrice"`
	Description           string                      `json:"description"`
	CreatedAt             time.Time                   `json:"createdAt"`
}

// ToStockTransactionResponse converts domain.StockTransaction to DTO.
func ToStockTransactionResponse(t *domain.StockTransaction) StockTransactionResponse {
	return StockTransactionResponse{
		StockTransactionID:    t.StockTransactionID,
		CompanyID:             t.CompanyID,
		StockID:               t.StockID,
		CounterpartyCompanyID: t.CounterpartyCompanyID,
		Type:                  t.Type,
		Quantity:              t.Quantity,
		UnitPrice:             t.UnitPrice,
		TotalPrice:            t.TotalPrice,
		Description:           t.Description,
		CreatedAt:             t.CreatedAt,
	}
}

// ToStockTransactionResponseSlice converts a slice of domain stock transactions to DTOs.
func ToStockTransactionResponseSlice(ts []domain.StockTransaction) []StockTransactionResponse {
	list := make([]StockTransactionResponse, len(ts))
	for i := range ts {
		list[i] = ToStockTransactionResponse(&ts[i])
	}
	return list
}
