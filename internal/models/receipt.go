package models

import "github.com/shopspring/decimal"

// Receipt is the database row representation of an issued invoice.
type Receipt struct {
	ReceiptID   string          `db:"receipt_id"`
	CompanyID   string          `db:"company_id"`
	AccountID   string          `db:"account_id"`
	StockID     string          `db:"stock_id"`
	Type        string          `db:"type"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Description string          `db:"description"`
	AuditFields
	SoftDeleteFields
}
