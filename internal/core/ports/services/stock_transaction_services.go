package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// StockTransactionSvcFacade defines operations on the stock ledger.
type StockTransactionSvcFacade interface {
	// CreateStockTransaction posts a stock movement directly, adjusting the
	// stock quantity and inserting the ledger line atomically.
	CreateStockTransaction(ctx context.Context, req dto.CreateStockTransactionRequest, callerID string, callerRole domain.UserRole) (*domain.StockTransaction, error)

	// ListStockTransactions retrieves all ledger lines. Admin only.
	ListStockTransactions(ctx context.Context, callerRole domain.UserRole) ([]domain.StockTransaction, error)

	// ListStockTransactionsByStock retrieves the ledger lines of one stock
	// the caller may act on.
	ListStockTransactionsByStock(ctx context.Context, stockID, callerID string, callerRole domain.UserRole) ([]domain.StockTransaction, error)

	// DeleteStockTransaction removes a ledger line. Admin-only correction
	// path; the only mutation the ledger admits.
	DeleteStockTransaction(ctx context.Context, stockTransactionID string, callerRole domain.UserRole) error
}
