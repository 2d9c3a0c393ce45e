package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelActTransaction converts a domain ActTransaction to a model ActTransaction
func ToModelActTransaction(d domain.ActTransaction) models.ActTransaction {
	return models.ActTransaction{
		ActTransactionID: d.ActTransactionID,
		CompanyID:        d.CompanyID,
		AccountID:        d.AccountID,
		ReceiptID:        d.ReceiptID,
		Amount:           d.Amount,
		Description:      d.Description,
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
	}
}

// ToDomainActTransaction converts a model ActTransaction to a domain ActTransaction
func ToDomainActTransaction(m models.ActTransaction) domain.ActTransaction {
	return domain.ActTransaction{
		ActTransactionID: m.ActTransactionID,
		CompanyID:        m.CompanyID,
		AccountID:        m.AccountID,
		ReceiptID:        m.ReceiptID,
		Amount:           m.Amount,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}

// ToDomainActTransactionSlice converts a slice of model ActTransactions to domain form
func ToDomainActTransactionSlice(ms []models.ActTransaction) []domain.ActTransaction {
	ds := make([]domain.ActTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActTransaction(m)
	}
	return ds
}
