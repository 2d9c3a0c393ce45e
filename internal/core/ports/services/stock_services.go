package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// StockReaderSvc defines read operations for stock data
type StockReaderSvc interface {
	// ListStocks retrieves all stocks. Admin only.
	ListStocks(ctx context.Context, callerRole domain.UserRole) ([]domain.Stock, error)

	// ListCompanyStocks retrieves the stocks of a company the caller owns.
	ListCompanyStocks(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) ([]domain.Stock, error)
}

// StockWriterSvc defines write operations for stock data
type StockWriterSvc interface {
	// CreateStock persists a new stock under a company the caller owns.
	CreateStock(ctx context.Context, req dto.CreateStockRequest, callerID string, callerRole domain.UserRole) (*domain.Stock, error)

	// UpdateStock updates a stock's details.
	UpdateStock(ctx context.Context, req dto.UpdateStockRequest, callerID string, callerRole domain.UserRole) (*domain.Stock, error)

	// UpdateStockQuantity applies a quantity adjustment and posts the
	// matching stock transaction atomically. Returns the adjusted stock.
	UpdateStockQuantity(ctx context.Context, req dto.UpdateStockQuantityRequest, callerID string, callerRole domain.UserRole) (*domain.Stock, error)

	// SoftDeleteStock tombstones a stock the caller may act on.
	SoftDeleteStock(ctx context.Context, stockID, callerID string, callerRole domain.UserRole) error

	// DeleteStock tombstones a stock regardless of ownership. Admin only.
	// Ledger lines keep referencing the stock, so rows are never removed.
	DeleteStock(ctx context.Context, stockID, callerID string, callerRole domain.UserRole) error
}

// StockSvcFacade combines all stock-related service interfaces
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
