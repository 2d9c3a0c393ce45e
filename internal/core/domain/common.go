package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// SoftDeleteFields holds the tombstone markers for soft-deletable entities.
type SoftDeleteFields struct {
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy string     `json:"deletedBy,omitempty"` // UserID reference
}

// SoftDeletable is implemented by every entity that supports tombstoning.
// The capability is expressed in the type system; there is no runtime
// inspection anywhere.
type SoftDeletable interface {
	MarkDeleted(deletedBy string, deletedAt time.Time)
	IsDeleted() bool
}

// MarkDeleted stamps the tombstone markers.
func (f *SoftDeleteFields) MarkDeleted(deletedBy string, deletedAt time.Time) {
	f.DeletedAt = &deletedAt
	f.DeletedBy = deletedBy
}

// IsDeleted reports whether the entity carries a tombstone.
func (f *SoftDeleteFields) IsDeleted() bool {
	return f.DeletedAt != nil
}
