package domain

import "github.com/shopspring/decimal"

// MaxAccountsPerCompany caps the number of active customer accounts per company.
const MaxAccountsPerCompany = 10

// Account represents a customer account held by a company. The balance is
// the amount the customer owes; it only moves through receipt postings.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id
	AccountName string          `json:"accountName"`
	PhoneNumber string          `json:"phoneNumber"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
	SoftDeleteFields
}

var _ SoftDeletable = (*Account)(nil)
