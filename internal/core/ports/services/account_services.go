package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// AccountReaderSvc defines read operations for customer account data
type AccountReaderSvc interface {
	// ListAccounts retrieves all accounts. Admin only.
	ListAccounts(ctx context.Context, callerRole domain.UserRole) ([]domain.Account, error)

	// ListCompanyAccounts retrieves the accounts of a company the caller owns.
	ListCompanyAccounts(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for customer account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account under a company the caller owns.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, callerID string, callerRole domain.UserRole) (*domain.Account, error)

	// UpdateAccount updates an account under a company the caller owns.
	UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest, callerID string, callerRole domain.UserRole) (*domain.Account, error)

	// SoftDeleteAccount tombstones an account the caller may act on.
	SoftDeleteAccount(ctx context.Context, accountID, callerID string, callerRole domain.UserRole) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
