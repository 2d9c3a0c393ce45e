package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type stockService struct {
	stockRepo    portsrepo.StockRepositoryFacade
	stockTxnRepo portsrepo.StockTransactionRepositoryFacade
	authorizer   portssvc.CompanyAuthorizerSvc
}

// NewStockService creates the stock service.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, stockTxnRepo portsrepo.StockTransactionRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo, stockTxnRepo: stockTxnRepo, authorizer: authorizer}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) ListStocks(ctx context.Context, callerRole domain.UserRole) ([]domain.Stock, error) {
	if err := requireAdmin(callerRole); err != nil {
		return nil, err
	}
	return s.stockRepo.ListStocks(ctx)
}

func (s *stockService) ListCompanyStocks(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) ([]domain.Stock, error) {
	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, companyID, callerID, callerRole); err != nil {
		return nil, err
	}
	return s.stockRepo.ListStocksByCompanyID(ctx, companyID)
}

func (s *stockService) CreateStock(ctx context.Context, req dto.CreateStockRequest, callerID string, callerRole domain.UserRole) (*domain.Stock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, req.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	if !req.Unit.IsValid() {
		return nil, apperrors.NewValidationFailedError("Invalid stock unit")
	}
	if req.Quantity.IsNegative() {
		return nil, apperrors.NewValidationFailedError("Stock quantity cannot be negative")
	}
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationFailedError("Stock price cannot be negative")
	}

	now := time.Now()
	stock := domain.Stock{
		StockID:     uuid.NewString(),
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Price:       req.Price,
		Description: req.Description,
		Version:     1,
	}
	stock.CreatedAt = now
	stock.CreatedBy = callerID
	stock.LastUpdatedAt = now
	stock.LastUpdatedBy = callerID

	if err := s.stockRepo.SaveStock(ctx, stock); err != nil {
		logger.Error("failed to save stock", "error", err)
		return nil, err
	}

	logger.Info("stock created", "stock_id", stock.StockID, "company_id", req.CompanyID)
	return &stock, nil
}

func (s *stockService) UpdateStock(ctx context.Context, req dto.UpdateStockRequest, callerID string, callerRole domain.UserRole) (*domain.Stock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stock, err := s.findStock(ctx, req.StockID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, stock.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	changed := false
	if req.Name != "" && req.Name != stock.Name {
		stock.Name = req.Name
		changed = true
	}
	if req.Unit != "" && req.Unit != stock.Unit {
		if !req.Unit.IsValid() {
			return nil, apperrors.NewValidationFailedError("Invalid stock unit")
		}
		stock.Unit = req.Unit
		changed = true
	}
	if req.Price != nil && !req.Price.Equal(stock.Price) {
		if req.Price.IsNegative() {
			return nil, apperrors.NewValidationFailedError("Stock price cannot be negative")
		}
		stock.Price = *req.Price
		changed = true
	}
	if req.Description != "" && req.Description != stock.Description {
		stock.Description = req.Description
		changed = true
	}

	if !changed {
		return nil, apperrors.NewValidationFailedError(apperrors.MsgNoValueToUpdate)
	}

	stock.LastUpdatedAt = time.Now()
	stock.LastUpdatedBy = callerID

	if err := s.stockRepo.UpdateStock(ctx, *stock); err != nil {
		logger.Error("failed to update stock", "stock_id", stock.StockID, "error", err)
		return nil, err
	}
	stock.Version++

	logger.Info("stock updated", "stock_id", stock.StockID)
	return stock, nil
}

// UpdateStockQuantity adjusts the quantity through a posted stock
// transaction so the ledger always explains the balance.
func (s *stockService) UpdateStockQuantity(ctx context.Context, req dto.UpdateStockQuantityRequest, callerID string, callerRole domain.UserRole) (*domain.Stock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	stock, err := s.findStock(ctx, req.StockID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, stock.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("Adjustment amount must be positive")
	}

	quantityDelta := req.Amount
	txnType := domain.StockIn
	if !req.IsAddition {
		if req.Amount.GreaterThan(stock.Quantity) {
			return nil, apperrors.NewValidationFailedError(apperrors.MsgInsufficientQuantity)
		}
		quantityDelta = req.Amount.Neg()
		txnType = domain.StockOut
	}

	now := time.Now()
	txn := domain.StockTransaction{
		StockTransactionID: uuid.NewString(),
		CompanyID:          stock.CompanyID,
		StockID:            stock.StockID,
		Type:               txnType,
		Quantity:           req.Amount,
		UnitPrice:          stock.Price,
		TotalPrice:         req.Amount.Mul(stock.Price),
		Description:        "Stock quantity adjustment",
		CreatedAt:          now,
		CreatedBy:          callerID,
	}

	if err := s.stockTxnRepo.PostStockTransaction(ctx, txn, quantityDelta); err != nil {
		logger.Error("failed to post quantity adjustment", "stock_id", stock.StockID, "error", err)
		return nil, err
	}

	stock.Quantity = stock.Quantity.Add(quantityDelta)
	stock.Version++
	stock.LastUpdatedAt = now
	stock.LastUpdatedBy = callerID

	logger.Info("stock quantity adjusted", "stock_id", stock.StockID, "type", txnType, "amount", req.Amount.String())
	return stock, nil
}

func (s *stockService) SoftDeleteStock(ctx context.Context, stockID, callerID string, callerRole domain.UserRole) error {
	stock, err := s.findStock(ctx, stockID)
	if err != nil {
		return err
	}
	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, stock.CompanyID, callerID, callerRole); err != nil {
		return err
	}

	if err := s.stockRepo.MarkStockDeleted(ctx, stockID, callerID, time.Now()); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("stock soft deleted", "stock_id", stockID, "deleted_by", callerID)
	return nil
}

// DeleteStock is the admin removal path. Ledger lines keep referencing the
// stock, so the row is tombstoned rather than removed.
func (s *stockService) DeleteStock(ctx context.Context, stockID, callerID string, callerRole domain.UserRole) error {
	if err := requireAdmin(callerRole); err != nil {
		return err
	}

	if err := s.stockRepo.MarkStockDeleted(ctx, stockID, callerID, time.Now()); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("stock deleted by admin", "stock_id", stockID, "deleted_by", callerID)
	return nil
}

func (s *stockService) findStock(ctx context.Context, stockID string) (*domain.Stock, error) {
	stock, err := s.stockRepo.FindStockByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
		}
		return nil, err
	}
	return stock, nil
}
