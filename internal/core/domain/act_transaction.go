package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActTransaction is one append-only line on a customer account's ledger.
// A positive amount debits the account (the customer owes more), a
// negative amount credits it.
type ActTransaction struct {
	ActTransactionID string          `json:"actTransactionID"` // Primary Key (UUID)
	CompanyID        string          `json:"companyID"`        // FK -> companies.company_id
	AccountID        string          `json:"accountID"`        // FK -> accounts.account_id
	ReceiptID        string          `json:"receiptID"`        // FK -> receipts.receipt_id
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}
