package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	"github.com/stockaccount/stock_account_api/internal/models"
	"github.com/stockaccount/stock_account_api/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	db *pgxpool.Pool
}

func newPgxCompanyRepository(db *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{db: db}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelectColumns = `
	company_id, user_id, company_name, phone_number, email, address,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at, deleted_by
`

func scanCompanyRow(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(
		&m.CompanyID,
		&m.UserID,
		&m.CompanyName,
		&m.PhoneNumber,
		&m.Email,
		&m.Address,
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

func (r *PgxCompanyRepository) findCompanyBy(ctx context.Context, whereClause string, arg any) (*domain.Company, error) {
	query := `SELECT ` + companySelectColumns + ` FROM companies WHERE ` + whereClause + ` AND deleted_at IS NULL;`
	m, err := scanCompanyRow(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find company", err)
	}
	d := mapping.ToDomainCompany(*m)
	return &d, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return r.findCompanyBy(ctx, "company_id = $1", companyID)
}

func (r *PgxCompanyRepository) FindCompanyByName(ctx context.Context, companyName string) (*domain.Company, error) {
	return r.findCompanyBy(ctx, "company_name = $1", companyName)
}

func (r *PgxCompanyRepository) FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.findCompanyBy(ctx, "email = $1", email)
}

func (r *PgxCompanyRepository) FindCompanyByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Company, error) {
	return r.findCompanyBy(ctx, "phone_number = $1", phoneNumber)
}

func (r *PgxCompanyRepository) listCompanies(ctx context.Context, whereClause string, args ...any) ([]domain.Company, error) {
	query := `SELECT ` + companySelectColumns + ` FROM companies WHERE ` + whereClause + ` ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()

	modelCompanies := []models.Company{}
	for rows.Next() {
		m, err := scanCompanyRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan company row", err)
		}
		modelCompanies = append(modelCompanies, *m)
	}
	if rows.Err() != nil {
		return nil, apperrors.NewAppError(500, "error iterating company rows", rows.Err())
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.listCompanies(ctx, "deleted_at IS NULL")
}

func (r *PgxCompanyRepository) ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error) {
	return r.listCompanies(ctx, "user_id = $1 AND deleted_at IS NULL", userID)
}

func (r *PgxCompanyRepository) CountActiveCompaniesByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM companies WHERE user_id = $1 AND deleted_at IS NULL;`
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count companies", err)
	}
	return count, nil
}

func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
        INSERT INTO companies (company_id, user_id, company_name, phone_number, email, address,
                               created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.CompanyID,
		m.UserID,
		m.CompanyName,
		m.PhoneNumber,
		m.Email,
		m.Address,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError(conflictMessageForCompanyConstraint(pgErr.ConstraintName))
		}
		return apperrors.NewAppError(500, "failed to save company", err)
	}
	return nil
}

func conflictMessageForCompanyConstraint(constraintName string) string {
	switch constraintName {
	case "uq_companies_email":
		return apperrors.MsgEmailRegistered
	case "uq_companies_phone_number":
		return apperrors.MsgPhoneRegistered
	}
	return apperrors.MsgCompanyNameRegistered
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
        UPDATE companies
        SET company_name = $1, phone_number = $2, email = $3, address = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE company_id = $7 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.CompanyName,
		m.PhoneNumber,
		m.Email,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.CompanyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError(conflictMessageForCompanyConstraint(pgErr.ConstraintName))
		}
		return apperrors.NewAppError(500, "failed to update company", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgCompanyNotFound)
	}
	return nil
}

func (r *PgxCompanyRepository) MarkCompanyDeleted(ctx context.Context, companyID string, deletedBy string, deletedAt time.Time) error {
	query := `
        UPDATE companies
        SET deleted_at = $1, deleted_by = $2, last_updated_at = $1, last_updated_by = $2
        WHERE company_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark company as deleted", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.MsgCompanyNotFound)
	}
	return nil
}
