package domain

import "github.com/shopspring/decimal"

// Unit is the measurement unit of a stock item.
type Unit string

const (
	UnitUnknown Unit = "UNKNOWN"
	UnitKg      Unit = "KG"
	UnitGram    Unit = "GRAM"
	UnitTon     Unit = "TON"
	UnitLt      Unit = "LT"
	UnitMl      Unit = "ML"
	UnitMeter   Unit = "METER"
	UnitCm      Unit = "CM"
	UnitMm      Unit = "MM"
	UnitInch    Unit = "INCH"
	UnitFt      Unit = "FT"
	UnitPiece   Unit = "PIECE"
	UnitPack    Unit = "PACK"
	UnitRoll    Unit = "ROLL"
)

// IsValid reports whether u is one of the known units.
func (u Unit) IsValid() bool {
	switch u {
	case UnitUnknown, UnitKg, UnitGram, UnitTon, UnitLt, UnitMl, UnitMeter,
		UnitCm, UnitMm, UnitInch, UnitFt, UnitPiece, UnitPack, UnitRoll:
		return true
	}
	return false
}

// Stock represents an inventory item held by a company. Quantity is never
// negative; Version is the optimistic concurrency token and bumps on every
// quantity or detail update.
type Stock struct {
	StockID     string          `json:"stockID"`   // Primary Key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        Unit            `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Version     int64           `json:"version"`
	AuditFields
	SoftDeleteFields
}

var _ SoftDeletable = (*Stock)(nil)
