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

type stockTransactionService struct {
	stockTxnRepo portsrepo.StockTransactionRepositoryFacade
	stockRepo    portsrepo.StockRepositoryFacade
	companyRepo  portsrepo.CompanyRepositoryFacade
	authorizer   portssvc.CompanyAuthorizerSvc
}

// NewStockTransactionService creates the stock ledger service.
func NewStockTransactionService(
	stockTxnRepo portsrepo.StockTransactionRepositoryFacade,
	stockRepo portsrepo.StockRepositoryFacade,
	companyRepo portsrepo.CompanyRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.StockTransactionSvcFacade {
	return &stockTransactionService{
		stockTxnRepo: stockTxnRepo,
		stockRepo:    stockRepo,
		companyRepo:  companyRepo,
		authorizer:   authorizer,
	}
}

var _ portssvc.StockTransactionSvcFacade = (*stockTransactionService)(nil)

func (s *stockTransactionService) CreateStockTransaction(ctx context.Context, req dto.CreateStockTransactionRequest, callerID string, callerRole domain.UserRole) (*domain.StockTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, req.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	var counterpartyID *string
	if req.CounterpartyCompanyID != "" {
		if _, err := s.companyRepo.FindCompanyByID(ctx, req.CounterpartyCompanyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(apperrors.MsgCounterpartyNotFound)
			}
			return nil, err
		}
		counterpartyID = &req.CounterpartyCompanyID
	}

	stock, err := s.stockRepo.FindStockByID(ctx, req.StockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
		}
		return nil, err
	}
	if stock.CompanyID != req.CompanyID {
		return nil, apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
	}

	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationFailedError("Transaction quantity must be positive")
	}
	if req.UnitPrice.IsNegative() {
		return nil, apperrors.NewValidationFailedError("Unit price cannot be negative")
	}

	quantityDelta := req.Quantity
	if req.Type == domain.StockOut {
		if req.Quantity.GreaterThan(stock.Quantity) {
			return nil, apperrors.NewValidationFailedError(apperrors.MsgInsufficientQuantity)
		}
		quantityDelta = req.Quantity.Neg()
	}

	txn := domain.StockTransaction{
		StockTransactionID:    uuid.NewString(),
		CompanyID:             req.CompanyID,
		StockID:               req.StockID,
		CounterpartyCompanyID: counterpartyID,
		Type:                  req.Type,
		Quantity:              req.Quantity,
		UnitPrice:             req.UnitPrice,
		TotalPrice:            req.Quantity.Mul(req.UnitPrice),
		Description:           req.Description,
		CreatedAt:             time.Now(),
		CreatedBy:             callerID,
	}

	if err := s.stockTxnRepo.PostStockTransaction(ctx, txn, quantityDelta); err != nil {
		logger.Error("failed to post stock transaction", "stock_id", req.StockID, "error", err)
		return nil, err
	}

	logger.Info("stock transaction posted", "stock_transaction_id", txn.StockTransactionID, "type", txn.Type)
	return &txn, nil
}

func (s *stockTransactionService) ListStockTransactions(ctx context.Context, callerRole domain.UserRole) ([]domain.StockTransaction, error) {
	if err := requireAdmin(callerRole); err != nil {
		return nil, err
	}
	return s.stockTxnRepo.ListStockTransactions(ctx)
}

func (s *stockTransactionService) ListStockTransactionsByStock(ctx context.Context, stockID, callerID string, callerRole domain.UserRole) ([]domain.StockTransaction, error) {
	stock, err := s.stockRepo.FindStockByID(ctx, stockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
		}
		return nil, err
	}
	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, stock.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}
	return s.stockTxnRepo.ListStockTransactionsByStockID(ctx, stockID)
}

func (s *stockTransactionService) DeleteStockTransaction(ctx context.Context, stockTransactionID string, callerRole domain.UserRole) error {
	if err := requireAdmin(callerRole); err != nil {
		return err
	}

	if err := s.stockTxnRepo.DeleteStockTransaction(ctx, stockTransactionID); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("stock transaction deleted", "stock_transaction_id", stockTransactionID)
	return nil
}
