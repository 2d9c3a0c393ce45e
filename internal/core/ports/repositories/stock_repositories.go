package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// StockReader defines read operations for stock data
type StockReader interface {
	// FindStockByID retrieves a non-deleted stock by its unique identifier.
	FindStockByID(ctx context.Context, stockID string) (*domain.Stock, error)

	// ListStocks retrieves all non-deleted stocks.
	ListStocks(ctx context.Context) ([]domain.Stock, error)

	// ListStocksByCompanyID retrieves the non-deleted stocks of a company.
	ListStocksByCompanyID(ctx context.Context, companyID string) ([]domain.Stock, error)
}

// StockWriter defines write operations for stock data
type StockWriter interface {
	// SaveStock persists a new stock with version 1.
	SaveStock(ctx context.Context, stock domain.Stock) error

	// UpdateStock updates a stock's details with an optimistic version
	// check; a stale version yields a conflict error.
	UpdateStock(ctx context.Context, stock domain.Stock) error

	// MarkStockDeleted tombstones a stock.
	MarkStockDeleted(ctx context.Context, stockID string, deletedBy string, deletedAt time.Time) error
}

// StockTransactionSupport defines operations used inside posting transactions
type StockTransactionSupport interface {
	// FindStockByIDForUpdate selects a stock and locks its row within a transaction.
	FindStockByIDForUpdate(ctx context.Context, tx pgx.Tx, stockID string) (*domain.Stock, error)

	// UpdateStockQuantityInTx sets a stock's quantity within a transaction,
	// bumping the version with an optimistic check against stock.Version.
	UpdateStockQuantityInTx(ctx context.Context, tx pgx.Tx, stock *domain.Stock, newQuantity decimal.Decimal, userID string, now time.Time) error
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
	StockTransactionSupport
}
