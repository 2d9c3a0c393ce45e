package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// ReceiptListFilter narrows receipt listings. Empty fields are not applied.
type ReceiptListFilter struct {
	CompanyID string
	AccountID string
	StockID   string
}

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a non-deleted receipt by its unique identifier.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves non-deleted receipts matching the filter.
	ListReceipts(ctx context.Context, filter ReceiptListFilter) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	// PostReceipt persists the receipt together with its stock and account
	// ledger lines in one database transaction. The stock and account rows
	// are locked, quantityDelta and balanceDelta are applied under the
	// locks, and the stock's version is bumped with an optimistic check.
	// The stock quantity is re-checked for sufficiency under the lock.
	PostReceipt(ctx context.Context, receipt domain.Receipt, stockTxn domain.StockTransaction, actTxn domain.ActTransaction, quantityDelta, balanceDelta decimal.Decimal) error

	// MarkReceiptDeleted tombstones a receipt.
	MarkReceiptDeleted(ctx context.Context, receiptID string, deletedBy string, deletedAt time.Time) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
