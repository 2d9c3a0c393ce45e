package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransaction is the database row representation of a stock ledger line.
type StockTransaction struct {
	StockTransactionID    string          `db:"stock_transaction_id"`
	CompanyID             string          `db:"company_id"`
	StockID               string          `db:"stock_id"`
	CounterpartyCompanyID *string         `db:"counterparty_company_id"`
	Type                  string          `db:"type"`
	Quantity              decimal.Decimal `db:"quantity"`
	UnitPrice             decimal.Decimal `db:"unit_price"`
	TotalPrice            decimal.Decimal `db:"total_price"`
	Description           string          `db:"description"`
	CreatedAt             time.Time       `db:"created_at"`
	CreatedBy             string          `db:"created_by"`
}
