package domain

import "github.com/shopspring/decimal"

// ReceiptType indicates the commercial direction of a receipt.
type ReceiptType string

const (
	ReceiptSale   ReceiptType = "SALE"
	ReceiptReturn ReceiptType = "RETURN"
)

// IsValid reports whether t is a known receipt type.
func (t ReceiptType) IsValid() bool {
	return t == ReceiptSale || t == ReceiptReturn
}

// Receipt records the issuance of an invoice to a customer account for a
// quantity of stock. UnitPrice snapshots the stock price at issuance time;
// TotalAmount is Quantity * UnitPrice.
type Receipt struct {
	ReceiptID   string          `json:"receiptID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id
	AccountID   string          `json:"accountID"` // FK -> accounts.account_id
	StockID     string          `json:"stockID"`   // FK -> stocks.stock_id
	Type        ReceiptType     `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Description string          `json:"description"`
	AuditFields
	SoftDeleteFields
}

var _ SoftDeletable = (*Receipt)(nil)
