package mapping

import (
	"database/sql"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:           d.UserID,
		Name:             d.Name,
		Surname:          d.Surname,
		Email:            d.Email,
		PhoneNumber:      d.PhoneNumber,
		PasswordHash:     d.PasswordHash,
		Role:             string(d.Role),
		AuditFields:      ToModelAuditFields(d.AuditFields),
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		Name:             m.Name,
		Surname:          m.Surname,
		Email:            m.Email,
		PhoneNumber:      m.PhoneNumber,
		PasswordHash:     m.PasswordHash,
		Role:             domain.UserRole(m.Role),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
