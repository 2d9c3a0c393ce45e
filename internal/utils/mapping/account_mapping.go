package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		CompanyID:        d.CompanyID,
		AccountName:      d.AccountName,
		PhoneNumber:      d.PhoneNumber,
		Email:            d.Email,
		Address:          d.Address,
		Balance:          d.Balance,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		CompanyID:        m.CompanyID,
		AccountName:      m.AccountName,
		PhoneNumber:      m.PhoneNumber,
		Email:            m.Email,
		Address:          m.Address,
		Balance:          m.Balance,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
