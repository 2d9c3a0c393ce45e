package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelStock converts a domain Stock to a model Stock
func ToModelStock(d domain.Stock) models.Stock {
	return models.Stock{
		StockID:          d.StockID,
		CompanyID:        d.CompanyID,
		Name:             d.Name,
		Quantity:         d.Quantity,
		Unit:             string(d.Unit),
		Price:            d.Price,
		Description:      d.Description,
		Version:          d.Version,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainStock converts a model Stock to a domain Stock
func ToDomainStock(m models.Stock) domain.Stock {
	return domain.Stock{
		StockID:          m.StockID,
		CompanyID:        m.CompanyID,
		Name:             m.Name,
		Quantity:         m.Quantity,
		Unit:             domain.Unit(m.Unit),
		Price:            m.Price,
		Description:      m.Description,
		Version:          m.Version,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainStockSlice converts a slice of model Stocks to a slice of domain Stocks
func ToDomainStockSlice(ms []models.Stock) []domain.Stock {
	ds := make([]domain.Stock, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStock(m)
	}
	return ds
}
