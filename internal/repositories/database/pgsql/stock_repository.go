package pgsql

import (
	"context"
	"errors"
	"time"

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

type PgxStockRepository struct {
	db *pgxpool.Pool
}

func newPgxStockRepository(db *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{db: db}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

const stockSelectColumns = `
	stock_id, company_id, name, quantity, unit, price, description, version,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at, deleted_by
`

func scanStockRow(row pgx.Row) (*models.Stock, error) {
	var m models.Stock
	err := row.Scan(
		&m.StockID,
		&m.CompanyID,
		&m.Name,
		&m.Quantity,
		&m.Unit,
		&m.Price,
		&m.Description,
		&m.Version,
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

func (r *PgxStockRepository) FindStockByID(ctx context.Context, stockID string) (*domain.Stock, error) {
	query := `SELECT ` + stockSelectColumns + ` FROM stocks WHERE stock_id = $1 AND deleted_at IS NULL;`
	m, err := scanStockRow(r.db.QueryRow(ctx, query, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stock", err)
	}
	d := mapping.ToDomainStock(*m)
	return &d, nil
}

func (r *PgxStockRepository) listStocks(ctx context.Context, whereClause string, args ...any) ([]domain.Stock, error) {
	query := `SELECT ` + stockSelectColumns + ` FROM stocks WHERE ` + whereClause + ` ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stocks", err)
	}
	defer rows.Close()

	modelStocks := []models.Stock{}
	for rows.Next() {
		m, err := scanStockRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock row", err)
		}
		modelStocks = append(modelStocks, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock rows", rows.Err())
	}

	return mapping.ToDomainStockSlice(modelStocks), nil
}

func (r *PgxStockRepository) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	return r.listStocks(ctx, "deleted_at IS NULL")
}

func (r *PgxStockRepository) ListStocksByCompanyID(ctx context.Context, companyID string) ([]domain.Stock, error) {
	return r.listStocks(ctx, "company_id = $1 AND deleted_at IS NULL", companyID)
}

func (r *PgxStockRepository) SaveStock(ctx context.Context, stock domain.Stock) error {
	m := mapping.ToModelStock(stock)
	query := `
        INSERT INTO stocks (stock_id, company_id, name, quantity, unit, price, description, version,
                            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.StockID,
		m.CompanyID,
		m.Name,
		m.Quantity,
		m.Unit,
		m.Price,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError(apperrors.MsgCompanyNotFound)
		}
		return apperrors.NewAppError(500, "failed to save stock", err)
	}
	return nil
}

// UpdateStock bumps the version on every write so concurrent writers lose
// cleanly instead of overwriting each other.
func (r *PgxStockRepository) UpdateStock(ctx context.Context, stock domain.Stock) error {
	m := mapping.ToModelStock(stock)
	query := `
        UPDATE stocks
        SET name = $1, unit = $2, price = $3, description = $4,
            last_updated_at = $5, last_updated_by = $6, version = version + 1
        WHERE stock_id = $7 AND version = $8 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.Unit,
		m.Price,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.StockID,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update stock", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError(apperrors.MsgStockVersionConflict)
	}
	return nil
}

func (r *PgxStockRepository) MarkStockDeleted(ctx context.Context, stockID string, deletedBy string, deletedAt time.Time) error {
	query := `
        UPDATE stocks
        SET deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
        WHERE stock_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, stockID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark stock as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgStockNotFound)
	}
	return nil
}

func (r *PgxStockRepository) FindStockByIDForUpdate(ctx context.Context, tx pgx.Tx, stockID string) (*domain.Stock, error) {
	query := `SELECT ` + stockSelectColumns + ` FROM stocks WHERE stock_id = $1 AND deleted_at IS NULL FOR UPDATE;`
	m, err := scanStockRow(tx.QueryRow(ctx, query, stockID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock stock row", err)
	}
	d := mapping.ToDomainStock(*m)
	return &d, nil
}

func (r *PgxStockRepository) UpdateStockQuantityInTx(ctx context.Context, tx pgx.Tx, stock *domain.Stock, newQuantity decimal.Decimal, userID string, now time.Time) error {
	query := `
        UPDATE stocks
        SET quantity = $1, last_updated_at = $2, last_updated_by = $3, version = version + 1
        WHERE stock_id = $4 AND version = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query, newQuantity, now, userID, stock.StockID, stock.Version)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update stock quantity", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewConflictError(apperrors.MsgStockVersionConflict)
	}
	stock.Quantity = newQuantity
	stock.Version++
	return nil
}
