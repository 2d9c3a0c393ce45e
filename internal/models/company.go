package models

// Company is the database row representation of a company.
type Company struct {
	CompanyID   string `db:"company_id"`
	UserID      string `db:"user_id"`
	CompanyName string `db:"company_name"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
	Address     string `db:"address"`
	AuditFields
	SoftDeleteFields
}
