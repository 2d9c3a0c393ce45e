package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// StockTransactionReader defines read operations for stock ledger lines
type StockTransactionReader interface {
	// FindStockTransactionByID retrieves a stock transaction by its unique identifier.
	FindStockTransactionByID(ctx context.Context, stockTransactionID string) (*domain.StockTransaction, error)

	// ListStockTransactions retrieves all stock transactions.
	ListStockTransactions(ctx context.Context) ([]domain.StockTransaction, error)

	// ListStockTransactionsByStockID retrieves the ledger lines of one stock.
	ListStockTransactionsByStockID(ctx context.Context, stockID string) ([]domain.StockTransaction, error)
}

// StockTransactionWriter defines write operations for stock ledger lines
type StockTransactionWriter interface {
	// PostStockTransaction applies quantityDelta to the stock and inserts
	// the ledger line in one database transaction. The stock row is locked,
	// the resulting quantity is re-checked under the lock, and the version
	// is bumped with an optimistic check.
	PostStockTransaction(ctx context.Context, txn domain.StockTransaction, quantityDelta decimal.Decimal) error

	// InsertStockTransactionInTx inserts a ledger line within an existing transaction.
	InsertStockTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.StockTransaction) error

	// DeleteStockTransaction removes a ledger line permanently.
	DeleteStockTransaction(ctx context.Context, stockTransactionID string) error
}

// StockTransactionRepositoryFacade combines all stock transaction repository interfaces
type StockTransactionRepositoryFacade interface {
	StockTransactionReader
	StockTransactionWriter
}
