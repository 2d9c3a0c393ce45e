package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	"github.com/stockaccount/stock_account_api/internal/models"
	"github.com/stockaccount/stock_account_api/internal/utils/mapping"
)

type PgxActTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxActTransactionRepository(db *pgxpool.Pool) portsrepo.ActTransactionRepositoryFacade {
	return &PgxActTransactionRepository{db: db}
}

var _ portsrepo.ActTransactionRepositoryFacade = (*PgxActTransactionRepository)(nil)

const actTransactionSelectColumns = `
	act_transaction_id, company_id, account_id, receipt_id, amount, description, created_at, created_by
`

func (r *PgxActTransactionRepository) ListActTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.ActTransaction, error) {
	query := `SELECT ` + actTransactionSelectColumns + ` FROM act_transactions WHERE account_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query act transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.ActTransaction{}
	for rows.Next() {
		var m models.ActTransaction
		err := rows.Scan(
			&m.ActTransactionID,
			&m.CompanyID,
			&m.AccountID,
			&m.ReceiptID,
			&m.Amount,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan act transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating act transaction rows", rows.Err())
	}

	return mapping.ToDomainActTransactionSlice(modelTxns), nil
}

func (r *PgxActTransactionRepository) InsertActTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.ActTransaction) error {
	m := mapping.ToModelActTransaction(txn)
	query := `
        INSERT INTO act_transactions (act_transaction_id, company_id, account_id, receipt_id,
                                      amount, description, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := tx.Exec(ctx, query,
		m.ActTransactionID,
		m.CompanyID,
		m.AccountID,
		m.ReceiptID,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert act transaction", err)
	}
	return nil
}
