package models

import "github.com/shopspring/decimal"

// Stock is the database row representation of an inventory item.
type Stock struct {
	StockID     string          `db:"stock_id"`
	CompanyID   string          `db:"company_id"`
	Name        string          `db:"name"`
	Quantity    decimal.Decimal `db:"quantity"`
	Unit        string          `db:"unit"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
	Version     int64           `db:"version"`
	AuditFields
	SoftDeleteFields
}
