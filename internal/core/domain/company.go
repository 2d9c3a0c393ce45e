package domain

// MaxCompaniesPerUser caps the number of active companies a single user may own.
const MaxCompaniesPerUser = 3

// Company represents a tenant owned by a user. All stocks, customer
// accounts and ledger entries hang off a company.
type Company struct {
	CompanyID   string `json:"companyID"` // Primary Key (UUID)
	UserID      string `json:"userID"`    // FK -> users.user_id (owner)
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	AuditFields
	SoftDeleteFields
}

var _ SoftDeletable = (*Company)(nil)
