package models

import "github.com/shopspring/decimal"

// Account is the database row representation of a customer account.
type Account struct {
	AccountID   string          `db:"account_id"`
	CompanyID   string          `db:"company_id"`
	AccountName string          `db:"account_name"`
	PhoneNumber string          `db:"phone_number"`
	Email       string          `db:"email"`
	Address     string          `db:"address"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
	SoftDeleteFields
}
