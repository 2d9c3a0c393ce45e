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

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelectColumns = `
	account_id, company_id, account_name, phone_number, email, address, balance,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at, deleted_by
`

func scanAccountRow(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.AccountName,
		&m.PhoneNumber,
		&m.Email,
		&m.Address,
		&m.Balance,
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

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts WHERE account_id = $1 AND deleted_at IS NULL;`
	m, err := scanAccountRow(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account", err)
	}
	d := mapping.ToDomainAccount(*m)
	return &d, nil
}

// buildAccountContactQuery adds the self-exclusion clause only when an
// account ID is given; an empty string is not a valid uuid parameter.
func buildAccountContactQuery(companyID, email, phoneNumber, excludeAccountID string) (string, []any) {
	query := `
        SELECT ` + accountSelectColumns + `
        FROM accounts
        WHERE company_id = $1
          AND (email = $2 OR phone_number = $3)
          AND deleted_at IS NULL`
	args := []any{companyID, email, phoneNumber}
	if excludeAccountID != "" {
		query += `
          AND account_id != $4`
		args = append(args, excludeAccountID)
	}
	query += `
        LIMIT 1;`
	return query, args
}

func (r *PgxAccountRepository) FindAccountByContact(ctx context.Context, companyID, email, phoneNumber, excludeAccountID string) (*domain.Account, error) {
	query, args := buildAccountContactQuery(companyID, email, phoneNumber, excludeAccountID)
	m, err := scanAccountRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by contact", err)
	}
	d := mapping.ToDomainAccount(*m)
	return &d, nil
}

func (r *PgxAccountRepository) listAccounts(ctx context.Context, whereClause string, args ...any) ([]domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts WHERE ` + whereClause + ` ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccountRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		modelAccounts = append(modelAccounts, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", rows.Err())
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.listAccounts(ctx, "deleted_at IS NULL")
}

func (r *PgxAccountRepository) ListAccountsByCompanyID(ctx context.Context, companyID string) ([]domain.Account, error) {
	return r.listAccounts(ctx, "company_id = $1 AND deleted_at IS NULL", companyID)
}

func (r *PgxAccountRepository) CountActiveAccountsByCompanyID(ctx context.Context, companyID string) (int, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE company_id = $1 AND deleted_at IS NULL;`
	var count int
	if err := r.db.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count accounts", err)
	}
	return count, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
        INSERT INTO accounts (account_id, company_id, account_name, phone_number, email, address, balance,
                              created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.AccountName,
		m.PhoneNumber,
		m.Email,
		m.Address,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperrors.NewConflictError(apperrors.MsgAccountConflict)
			case "23503":
				return apperrors.NewNotFoundError(apperrors.MsgCompanyNotFound)
			}
		}
		return apperrors.NewAppError(500, "failed to save account", err)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
        UPDATE accounts
        SET account_name = $1, phone_number = $2, email = $3, address = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE account_id = $7 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.AccountName,
		m.PhoneNumber,
		m.Email,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AccountID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError(apperrors.MsgAccountConflict)
		}
		return apperrors.NewAppError(500, "failed to update account", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) MarkAccountDeleted(ctx context.Context, accountID string, deletedBy string, deletedAt time.Time) error {
	query := `
        UPDATE accounts
        SET deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
        WHERE account_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark account as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountSelectColumns + ` FROM accounts WHERE account_id = $1 AND deleted_at IS NULL FOR UPDATE;`
	m, err := scanAccountRow(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock account row", err)
	}
	d := mapping.ToDomainAccount(*m)
	return &d, nil
}

func (r *PgxAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, newBalance decimal.Decimal, userID string, now time.Time) error {
	query := `
        UPDATE accounts
        SET balance = $1, last_updated_at = $2, last_updated_by = $3
        WHERE account_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query, newBalance, now, userID, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account balance", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgAccountNotFound)
	}
	return nil
}
