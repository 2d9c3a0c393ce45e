package domain

import "time"

// UserRole defines the application-wide role of a user.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a registered user of the application.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	Email        string   `json:"email"`
	PhoneNumber  string   `json:"phoneNumber"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`

	// Refresh token state; only the SHA-256 hash of the token is kept.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	SoftDeleteFields
}

var _ SoftDeletable = (*User)(nil)
