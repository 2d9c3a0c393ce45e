package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	authorizer  portssvc.CompanyAuthorizerSvc
}

// NewAccountService creates the customer account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, authorizer: authorizer}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, callerRole domain.UserRole) ([]domain.Account, error) {
	if err := requireAdmin(callerRole); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccounts(ctx)
}

func (s *accountService) ListCompanyAccounts(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) ([]domain.Account, error) {
	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, companyID, callerID, callerRole); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccountsByCompanyID(ctx, companyID)
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, callerID string, callerRole domain.UserRole) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, req.CompanyID, callerID, callerRole); err != nil {
		return nil, err
	}

	count, err := s.accountRepo.CountActiveAccountsByCompanyID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxAccountsPerCompany {
		return nil, apperrors.NewForbiddenError(apperrors.MsgMaxAccountLimit)
	}

	if _, err := s.accountRepo.FindAccountByContact(ctx, req.CompanyID, req.Email, req.PhoneNumber, ""); err == nil {
		return nil, apperrors.NewConflictError(apperrors.MsgAccountConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   req.CompanyID,
		AccountName: req.AccountName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Balance:     decimal.Zero,
	}
	account.CreatedAt = now
	account.CreatedBy = callerID
	account.LastUpdatedAt = now
	account.LastUpdatedBy = callerID

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("failed to save account", "error", err)
		return nil, err
	}

	logger.Info("account created", "account_id", account.AccountID, "company_id", req.CompanyID)
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest, callerID string, callerRole domain.UserRole) (*domain.Account, error) {
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

	changed := false
	if req.AccountName != "" && req.AccountName != account.AccountName {
		account.AccountName = req.AccountName
		changed = true
	}
	contactChanged := false
	if req.PhoneNumber != "" && req.PhoneNumber != account.PhoneNumber {
		account.PhoneNumber = req.PhoneNumber
		changed = true
		contactChanged = true
	}
	if req.Email != "" && req.Email != account.Email {
		account.Email = req.Email
		changed = true
		contactChanged = true
	}
	if req.Address != "" && req.Address != account.Address {
		account.Address = req.Address
		changed = true
	}

	if !changed {
		return nil, apperrors.NewValidationFailedError(apperrors.MsgNoValueToUpdate)
	}

	if contactChanged {
		if _, err := s.accountRepo.FindAccountByContact(ctx, req.CompanyID, account.Email, account.PhoneNumber, account.AccountID); err == nil {
			return nil, apperrors.NewConflictError(apperrors.MsgAccountConflict)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = callerID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("failed to update account", "account_id", account.AccountID, "error", err)
		return nil, err
	}

	logger.Info("account updated", "account_id", account.AccountID)
	return account, nil
}

func (s *accountService) SoftDeleteAccount(ctx context.Context, accountID, callerID string, callerRole domain.UserRole) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
		}
		return err
	}

	if _, err := s.authorizer.AuthorizeCompanyAction(ctx, account.CompanyID, callerID, callerRole); err != nil {
		return err
	}

	if err := s.accountRepo.MarkAccountDeleted(ctx, accountID, callerID, time.Now()); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("account soft deleted", "account_id", accountID, "deleted_by", callerID)
	return nil
}
