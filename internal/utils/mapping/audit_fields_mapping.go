package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelSoftDeleteFields converts domain tombstone markers to their model form.
func ToModelSoftDeleteFields(d domain.SoftDeleteFields) models.SoftDeleteFields {
	var deletedBy *string
	if d.DeletedBy != "" {
		db := d.DeletedBy
		deletedBy = &db
	}
	return models.SoftDeleteFields{
		DeletedAt: d.DeletedAt,
		DeletedBy: deletedBy,
	}
}

// ToDomainSoftDeleteFields converts model tombstone markers to their domain form.
func ToDomainSoftDeleteFields(m models.SoftDeleteFields) domain.SoftDeleteFields {
	var deletedBy string
	if m.DeletedBy != nil {
		deletedBy = *m.DeletedBy
	}
	return domain.SoftDeleteFields{
		DeletedAt: m.DeletedAt,
		DeletedBy: deletedBy,
	}
}
