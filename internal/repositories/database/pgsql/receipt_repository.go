package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	"github.com/stockaccount/stock_account_api/internal/models"
	"github.com/stockaccount/stock_account_api/internal/utils/mapping"
)

type PgxReceiptRepository struct {
	BaseRepository
	db                 *pgxpool.Pool
	stockRepo          portsrepo.StockRepositoryFacade
	accountRepo        portsrepo.AccountRepositoryFacade
	stockTxnRepo       portsrepo.StockTransactionRepositoryFacade
	actTransactionRepo portsrepo.ActTransactionRepositoryFacade
}

func newPgxReceiptRepository(
	db *pgxpool.Pool,
	stockRepo portsrepo.StockRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	stockTxnRepo portsrepo.StockTransactionRepositoryFacade,
	actTransactionRepo portsrepo.ActTransactionRepositoryFacade,
) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository:     BaseRepository{Pool: db},
		db:                 db,
		stockRepo:          stockRepo,
		accountRepo:        accountRepo,
		stockTxnRepo:       stockTxnRepo,
		actTransactionRepo: actTransactionRepo,
	}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptSelectColumns = `
	receipt_id, company_id, account_id, stock_id, type, quantity, unit_price, total_amount, description,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at, deleted_by
`

func scanReceiptRow(row pgx.Row) (*models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.CompanyID,
		&m.AccountID,
		&m.StockID,
		&m.Type,
		&m.Quantity,
		&m.UnitPrice,
		&m.TotalAmount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptSelectColumns + ` FROM receipts WHERE receipt_id = $1 AND deleted_at IS NULL;`
	m, err := scanReceiptRow(r.db.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find receipt", err)
	}
	d := mapping.ToDomainReceipt(*m)
	return &d, nil
}

func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, filter portsrepo.ReceiptListFilter) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptSelectColumns + ` FROM receipts WHERE deleted_at IS NULL`
	args := []any{}
	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		query += fmt.Sprintf(" AND company_id = $%d", len(args))
	}
	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		query += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if filter.StockID != "" {
		args = append(args, filter.StockID)
		query += fmt.Sprintf(" AND stock_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receipts", err)
	}
	defer rows.Close()

	modelReceipts := []models.Receipt{}
	for rows.Next() {
		m, err := scanReceiptRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receipt row", err)
		}
		modelReceipts = append(modelReceipts, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating receipt rows", rows.Err())
	}

	return mapping.ToDomainReceiptSlice(modelReceipts), nil
}

// PostReceipt writes the receipt and both ledger lines in one database
// transaction. Lock order is stock first, then account. The sufficiency
// check runs again under the lock because the caller's read was unlocked.
func (r *PgxReceiptRepository) PostReceipt(ctx context.Context, receipt domain.Receipt, stockTxn domain.StockTransaction, actTxn domain.ActTransaction, quantityDelta, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	stock, err := r.stockRepo.FindStockByIDForUpdate(ctx, tx, receipt.StockID)
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

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, receipt.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
		}
		return err
	}

	if err := r.stockRepo.UpdateStockQuantityInTx(ctx, tx, stock, newQuantity, receipt.CreatedBy, receipt.CreatedAt); err != nil {
		return err
	}

	newBalance := account.Balance.Add(balanceDelta)
	if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, receipt.CreatedBy, receipt.CreatedAt); err != nil {
		return err
	}

	if err := r.insertReceiptInTx(ctx, tx, receipt); err != nil {
		return err
	}
	if err := r.stockTxnRepo.InsertStockTransactionInTx(ctx, tx, stockTxn); err != nil {
		return err
	}
	if err := r.actTransactionRepo.InsertActTransactionInTx(ctx, tx, actTxn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxReceiptRepository) insertReceiptInTx(ctx context.Context, tx pgx.Tx, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	query := `
        INSERT INTO receipts (receipt_id, company_id, account_id, stock_id, type, quantity, unit_price,
                              total_amount, description, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := tx.Exec(ctx, query,
		m.ReceiptID,
		m.CompanyID,
		m.AccountID,
		m.StockID,
		m.Type,
		m.Quantity,
		m.UnitPrice,
		m.TotalAmount,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert receipt", err)
	}
	return nil
}

func (r *PgxReceiptRepository) MarkReceiptDeleted(ctx context.Context, receiptID string, deletedBy string, deletedAt time.Time) error {
	query := `
        UPDATE receipts
        SET deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
        WHERE receipt_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, receiptID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark receipt as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgReceiptNotFound)
	}
	return nil
}
