package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransactionType indicates the direction of a stock movement.
type StockTransactionType string

const (
	StockIn  StockTransactionType = "IN"
	StockOut StockTransactionType = "OUT"
)

// IsValid reports whether t is a known movement direction.
func (t StockTransactionType) IsValid() bool {
	return t == StockIn || t == StockOut
}

// StockTransaction is one append-only ledger line recording a stock
// movement. TotalPrice is always Quantity * UnitPrice.
// CounterpartyCompanyID is only set for movements posted directly against
// another company; receipt-issued movements carry none.
type StockTransaction struct {
	StockTransactionID    string               `json:"stockTransactionID"` // Primary Key (UUID)
	CompanyID             string               `json:"companyID"`          // FK -> companies.company_id
	StockID               string               `json:"stockID"`            // FK -> stocks.stock_id
	CounterpartyCompanyID *string              `json:"counterpartyCompanyID,omitempty"`
	Type                  StockTransactionType `json:"type"`
	Quantity              decimal.Decimal      `json:"quantity"`
	UnitPrice             decimal.Decimal      `json:"unitPrice"`
	TotalPrice            decimal.Decimal      `json:"totalPrice"`
	Description           string               `json:"description"`
	CreatedAt             time.Time            `json:"createdAt"`
	CreatedBy             string               `json:"createdBy"`
}
