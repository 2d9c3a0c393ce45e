package models

import "database/sql"

// User is the database row representation of a user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Surname      string `db:"surname"`
	Email        string `db:"email"`
	PhoneNumber  string `db:"phone_number"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	AuditFields
	SoftDeleteFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
