package mapping

import (
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:        d.ReceiptID,
		CompanyID:        d.CompanyID,
		AccountID:        d.AccountID,
		StockID:          d.StockID,
		Type:             string(d.Type),
		Quantity:         d.Quantity,
		UnitPrice:        d.UnitPrice,
		TotalAmount:      d.TotalAmount,
		Description:      d.Description,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:        m.ReceiptID,
		CompanyID:        m.CompanyID,
		AccountID:        m.AccountID,
		StockID:          m.StockID,
		Type:             domain.ReceiptType(m.Type),
		Quantity:         m.Quantity,
		UnitPrice:        m.UnitPrice,
		TotalAmount:      m.TotalAmount,
		Description:      m.Description,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainReceiptSlice converts a slice of model Receipts to domain form
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
