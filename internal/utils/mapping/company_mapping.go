package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:        d.CompanyID,
		UserID:           d.UserID,
		CompanyName:      d.CompanyName,
		PhoneNumber:      d.PhoneNumber,
		Email:            d.Email,
		Address:          d.Address,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:        m.CompanyID,
		UserID:           m.UserID,
		CompanyName:      m.CompanyName,
		PhoneNumber:      m.PhoneNumber,
		Email:            m.Email,
		Address:          m.Address,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainCompanySlice converts a slice of model Companies to a slice of domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}
