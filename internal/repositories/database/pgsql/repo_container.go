package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories. The posting
// repositories receive the stock and account repositories so a posting can
// reuse their row-locking helpers inside its own transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	actTransactionRepo := newPgxActTransactionRepository(dbPool)
	stockTransactionRepo := newPgxStockTransactionRepository(dbPool, stockRepo)
	receiptRepo := newPgxReceiptRepository(dbPool, stockRepo, accountRepo, stockTransactionRepo, actTransactionRepo)

	return portsrepo.RepositoryProvider{
		UserRepo:             userRepo,
		CompanyRepo:          companyRepo,
		AccountRepo:          accountRepo,
		StockRepo:            stockRepo,
		StockTransactionRepo: stockTransactionRepo,
		ReceiptRepo:          receiptRepo,
		ActTransactionRepo:   actTransactionRepo,
	}
}
