package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// CreateReceiptRequest defines data for issuing a receipt against a
// customer account.
type CreateReceiptRequest struct {
	CompanyID   string             `json:"companyID" binding:"required,uuid"`
	AccountID   string             `json:"accountID" binding:"required,uuid"`
	StockID     string             `json:"stockID" binding:"required,uuid"`
	Type        domain.ReceiptType `json:"type" binding:"required,oneof=SALE RETURN"`
	Quantity    decimal.Decimal    `json:"quantity" binding:"required"`
	Description string             `json:"description" binding:"omitempty,max=250"`
}

// ListReceiptsParams are the progressive query filters for listing receipts.
type ListReceiptsParams struct {
	CompanyID string `form:"companyId" binding:"omitempty,uuid"`
	AccountID string `form:"accountId" binding:"omitempty,uuid"`
	StockID   string `form:"stockId" binding:"omitempty,uuid"`
}

// ReceiptResponse defines data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID   string             `json:"receiptID"`
	CompanyID   string             `json:"companyID"`
	AccountID   string             `json:"accountID"`
	StockID     string             `json:"stockID"`
	Type        domain.ReceiptType `json:"type"`
	Quantity    decimal.Decimal    `json:"quantity"`
	UnitPrice   decimal.Decimal    `json:"unitPrice"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToReceiptResponse converts domain.Receipt to DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:   r.ReceiptID,
		CompanyID:   r.CompanyID,
		AccountID:   r.AccountID,
		StockID:     r.StockID,
		Type:        r.Type,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TotalAmount: r.TotalAmount,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// ToReceiptResponseSlice converts a slice of domain receipts to DTOs.
func ToReceiptResponseSlice(rs []domain.Receipt) []ReceiptResponse {
	list := make([]ReceiptResponse, len(rs))
	for i := range rs {
		list[i] = ToReceiptResponse(&rs[i])
	}
	return list
}
