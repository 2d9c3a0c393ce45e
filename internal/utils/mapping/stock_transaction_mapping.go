package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelStockTransaction converts a domain StockTransaction to a model StockTransaction
func ToModelStockTransaction(d domain.StockTransaction) models.StockTransaction {
	return models.StockTransaction{
		StockTransactionID:    d.StockTransactionID,
		CompanyID:             d.CompanyID,
		StockID:               d.StockID,
		CounterpartyCompanyID: d.CounterpartyCompanyID,
		Type:                  string(d.Type),
		Quantity:              d.Quantity,
		UnitPrice:             d.UnitPrice,
		TotalPrice:            d.TotalPrice,
		Description:           d.Description,
		CreatedAt:             d.CreatedAt,
		CreatedBy:             d.CreatedBy,
	}
}

// ToDomainStockTransaction converts a model StockTransaction to a domain StockTransaction
func ToDomainStockTransaction(m models.StockTransaction) domain.StockTransaction {
	return domain.StockTransaction{
		StockTransactionID:    m.StockTransactionID,
		CompanyID:             m.CompanyID,
		StockID:               m.StockID,
		CounterpartyCompanyID: m.CounterpartyCompanyID,
		Type:                  domain.StockTransactionType(m.Type),
		Quantity:              m.Quantity,
		UnitPrice:             m.UnitPrice,
		TotalPrice:            m.TotalPrice,
		Description:           m.Description,
		CreatedAt:             m.CreatedAt,
		CreatedBy:             m.CreatedBy,
	}
}

// ToDomainStockTransactionSlice converts a slice of model StockTransactions to domain form
func ToDomainStockTransactionSlice(ms []models.StockTransaction) []domain.StockTransaction {
	ds := make([]domain.StockTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockTransaction(m)
	}
	return ds
}
