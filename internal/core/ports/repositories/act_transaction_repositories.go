package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// ActTransactionReader defines read operations for account ledger lines
type ActTransactionReader interface {
	// ListActTransactionsByAccountID retrieves the ledger lines of one account.
	ListActTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ActTransaction, error)
}

// ActTransactionWriter defines write operations for account ledger lines
type ActTransactionWriter interface {
	// InsertActTransactionInTx inserts a ledger line within an existing transaction.
	InsertActTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.ActTransaction) error
}

// ActTransactionRepositoryFacade combines all account ledger repository interfaces
type ActTransactionRepositoryFacade interface {
	ActTransactionReader
	ActTransactionWriter
}
