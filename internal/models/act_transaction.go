package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActTransaction is the database row representation of an account ledger line.
type ActTransaction struct {
	ActTransactionID string          `db:"act_transaction_id"`
	CompanyID        string          `db:"company_id"`
	AccountID        string          `db:"account_id"`
	ReceiptID        string          `db:"receipt_id"`
	Amount           decimal.Decimal `db:"amount"`
	Description      string          `db:"description"`
	CreatedAt        time.Time       `db:"created_at"`
	CreatedBy        string          `db:"created_by"`
}
