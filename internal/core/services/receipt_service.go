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

// actTransactionDescription matches the wording stamped on every account
// ledger line created through a receipt.
const actTransactionDescription = "An invoice issued."

type receiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	stockRepo   portsrepo.StockRepositoryFacade
	authorizer  portssvc.CompanyAuthorizerSvc
}

// NewReceiptService creates the receipt service.
func NewReceiptService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	stockRepo portsrepo.StockRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: receiptRepo,
		accountRepo: accountRepo,
		stockRepo:   stockRepo,
		authorizer:  authorizer,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// CreateReceipt builds the receipt plus both ledger lines and hands them to
// the repository, which persists everything in one transaction. A SALE moves
// stock out and debits the account; a RETURN moves stock in and credits it.
func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, callerID string, callerRole domain.UserRole) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, req.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
		}
		return nil, err
	}
	if account.CompanyID != req.CompanyID {
		return nil, apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
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
		return nil, apperrors.NewValidationFailedError("Receipt quantity must be positive")
	}
	if req.Type == domain.ReceiptSale && req.Quantity.GreaterThan(stock.Quantity) {
		return nil, apperrors.NewValidationFailedError(apperrors.MsgInsufficientQuantity)
	}

	now := time.Now()
	totalAmount := req.Quantity.Mul(stock.Price)

	receipt := domain.Receipt{
		ReceiptID:   uuid.NewString(),
		CompanyID:   req.CompanyID,
		AccountID:   req.AccountID,
		StockID:     req.StockID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		UnitPrice:   stock.Price,
		TotalAmount: totalAmount,
		Description: req.Description,
	}
	receipt.CreatedAt = now
	receipt.CreatedBy = callerID
	receipt.LastUpdatedAt = now
	receipt.LastUpdatedBy = callerID

	quantityDelta := req.Quantity.Neg()
	balanceDelta := totalAmount
	txnType := domain.StockOut
	actAmount := totalAmount
	if req.Type == domain.ReceiptReturn {
		quantityDelta = req.Quantity
		balanceDelta = totalAmount.Neg()
		txnType = domain.StockIn
		actAmount = totalAmount.Neg()
	}

	stockTxn := domain.StockTransaction{
		StockTransactionID: uuid.NewString(),
		CompanyID:          req.CompanyID,
		StockID:            req.StockID,
		Type:               txnType,
		Quantity:           req.Quantity,
		UnitPrice:          stock.Price,
		TotalPrice:         totalAmount,
		Description:        req.Description,
		CreatedAt:          now,
		CreatedBy:          callerID,
	}
	actTxn := domain.ActTransaction{
		ActTransactionID: uuid.NewString(),
		CompanyID:        req.CompanyID,
		AccountID:        req.AccountID,
		ReceiptID:        receipt.ReceiptID,
		Amount:           actAmount,
		Description:      actTransactionDescription,
		CreatedAt:        now,
		CreatedBy:        callerID,
	}

	if err := s.receiptRepo.PostReceipt(ctx, receipt, stockTxn, actTxn, quantityDelta, balanceDelta); err != nil {
		logger.Error("failed to post receipt", "receipt_id", receipt.ReceiptID, "error", err)
		return nil, err
	}

	logger.Info("receipt posted", "receipt_id", receipt.ReceiptID, "type", receipt.Type, "total", totalAmount.String())
	return &receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams, callerID string, callerRole domain.UserRole) ([]domain.Receipt, error) {
	if params.CompanyID == "" {
		if err := requireAdmin(callerRole); err != nil {
			return nil, err
		}
		return s.receiptRepo.ListReceipts(ctx, portsrepo.ReceiptListFilter{
			AccountID: params.AccountID,
			StockID:   params.StockID,
		})
	}

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, params.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	if params.AccountID != "" {
		account, err := s.accountRepo.FindAccountByID(ctx, params.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
			}
			return nil, err
		}
		if account.CompanyID != params.CompanyID {
			return nil, apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess)
		}
	}
	if params.StockID != "" {
		stock, err := s.stockRepo.FindStockByID(ctx, params.StockID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
			}
			return nil, err
		}
		if stock.CompanyID != params.CompanyID {
			return nil, apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess)
		}
	}

	return s.receiptRepo.ListReceipts(ctx, portsrepo.ReceiptListFilter{
		CompanyID: params.CompanyID,
		AccountID: params.AccountID,
		StockID:   params.StockID,
	})
}

func (s *receiptService) SoftDeleteReceipt(ctx context.Context, receiptID, callerID string, callerRole domain.UserRole) error {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.MsgReceiptNotFound)
		}
		return err
	}

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, receipt.CompanyID, callerID, callerRole); err != nil {
		return err
	}

	if err := s.receiptRepo.MarkReceiptDeleted(ctx, receiptID, callerID, time.Now()); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("receipt soft deleted", "receipt_id", receiptID, "deleted_by", callerID)
	return nil
}
