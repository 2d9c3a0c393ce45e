package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	"github.com/stockaccount/stock_account_api/internal/models"
	"github.com/stockaccount/stock_account_api/internal/utils/mapping"
)

type PgxStockTransactionRepository struct {
	BaseRepository
	db        *pgxpool.Pool
	stockRepo portsrepo.StockRepositoryFacade
}

func newPgxStockTransactionRepository(db *pgxpool.Pool, stockRepo portsrepo.StockRepositoryFacade) portsrepo.StockTransactionRepositoryFacade {
	return &PgxStockTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
		db:             db,
		stockRepo:      stockRepo,
	}
}

var _ portsrepo.StockTransactionRepositoryFacade = (*PgxStockTransactionRepository)(nil)

const stockTransactionSelectColumns = `
	stock_transaction_id, company_id, stock_id, counterparty_company_id, type,
	quantity, unit_price, total_price, description, created_at, created_by
`

func scanStockTransactionRow(row pgx.Row) (*models.StockTransaction, error) {
	var m models.StockTransaction
	err := row.Scan(
		&m.StockTransactionID,
		&m.CompanyID,
		&m.StockID,
		&m.CounterpartyCompanyID,
		&m.Type,
		&m.Quantity,
		&m.UnitPrice,
		&m.TotalPrice,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxStockTransactionRepository) FindStockTransactionByID(ctx context.Context, stockTransactionID string) (*domain.StockTransaction, error) {
	query := `SELECT ` + stockTransactionSelectColumns + ` FROM stock_transactions WHERE stock_transaction_id = $1;`
	m, err := scanStockTransactionRow(r.db.QueryRow(ctx, query, stockTransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stock transaction", err)
	}
	d := mapping.ToDomainStockTransaction(*m)
	return &d, nil
}

func (r *PgxStockTransactionRepository) listStockTransactions(ctx context.Context, whereClause string, args ...any) ([]domain.StockTransaction, error) {
	query := `SELECT ` + stockTransactionSelectColumns + ` FROM stock_transactions`
	if whereClause != "" {
		query += ` WHERE ` + whereClause
	}
	query += ` ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.StockTransaction{}
	for rows.Next() {
		m, err := scanStockTransactionRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock transaction row", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock transaction rows", rows.Err())
	}

	return mapping.ToDomainStockTransactionSlice(modelTxns), nil
}

func (r *PgxStockTransactionRepository) ListStockTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	return r.listStockTransactions(ctx, "")
}

func (r *PgxStockTransactionRepository) ListStockTransactionsByStockID(ctx context.Context, stockID string) ([]domain.StockTransaction, error) {
	return r.listStockTransactions(ctx, "stock_id = $1", stockID)
}

// PostStockTransaction adjusts the stock quantity and records the ledger line
// atomically. The stock row is locked first, the resulting quantity is
// re-checked under the lock and the version bump guards against writers that
// read the stock before the lock was taken.
func (r *PgxStockTransactionRepository) PostStockTransaction(ctx context.Context, txn domain.StockTransaction, quantityDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	stock, err := r.stockRepo.FindStockByIDForUpdate(ctx, tx, txn.StockID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
		}
		return err
	}

	newQuantity := stock.Quantity.Add(quantityDelta)
	if newQuantity.IsNegative() {
		return apperrors.NewValidationFailedError(apperrors.MsgInsufficientQuantity)
	}

	if err := r.stockRepo.UpdateStockQuantityInTx(ctx, tx, stock, newQuantity, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	if err := r.InsertStockTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxStockTransactionRepository) InsertStockTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.StockTransaction) error {
	m := mapping.ToModelStockTransaction(txn)
	query := `
        INSERT INTO stock_transactions (stock_transaction_id, company_id, stock_id, counterparty_company_id,
                                        type, quantity, unit_price, total_price, description, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := tx.Exec(ctx, query,
		m.StockTransactionID,
		m.CompanyID,
		m.StockID,
		m.CounterpartyCompanyID,
		m.Type,
		m.Quantity,
		m.UnitPrice,
		m.TotalPrice,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
		}
		return apperrors.NewAppError(500, "failed to insert stock transaction", err)
	}
	return nil
}

func (r *PgxStockTransactionRepository) DeleteStockTransaction(ctx context.Context, stockTransactionID string) error {
	query := `DELETE FROM stock_transactions WHERE stock_transaction_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, stockTransactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete stock transaction", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgStockTransNotFound)
	}
	return nil
}
