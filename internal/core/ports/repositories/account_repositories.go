package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// AccountReader defines read operations for customer account data
type AccountReader interface {
	// FindAccountByID retrieves a non-deleted account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByContact retrieves a non-deleted account in a company
	// matching either email or phone number, excluding the given account ID.
	// Used for uniqueness checks; excludeAccountID may be empty.
	FindAccountByContact(ctx context.Context, companyID, email, phoneNumber, excludeAccountID string) (*domain.Account, error)

	// ListAccounts retrieves all non-deleted accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListAccountsByCompanyID retrieves the non-deleted accounts of a company.
	ListAccountsByCompanyID(ctx context.Context, companyID string) ([]domain.Account, error)

	// CountActiveAccountsByCompanyID counts the non-deleted accounts of a company.
	CountActiveAccountsByCompanyID(ctx context.Context, companyID string) (int, error)
}

// AccountWriter defines write operations for customer account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// MarkAccountDeleted tombstones an account.
	MarkAccountDeleted(ctx context.Context, accountID string, deletedBy string, deletedAt time.Time) error
}

// AccountTransactionSupport defines operations used inside posting transactions
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row within a transaction.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateAccountBalanceInTx sets an account's balance within a transaction.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
