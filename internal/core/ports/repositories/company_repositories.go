package repositories

import (
	"context"
	"time"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a non-deleted company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByName retrieves a non-deleted company by name.
	FindCompanyByName(ctx context.Context, companyName string) (*domain.Company, error)

	// FindCompanyByEmail retrieves a non-deleted company by email.
	FindCompanyByEmail(ctx context.Context, email string) (*domain.Company, error)

	// FindCompanyByPhoneNumber retrieves a non-deleted company by phone number.
	FindCompanyByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Company, error)

	// ListCompanies retrieves all non-deleted companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// ListCompaniesByUserID retrieves the non-deleted companies owned by a user.
	ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error)

	// CountActiveCompaniesByUserID counts the non-deleted companies owned by a user.
	CountActiveCompaniesByUserID(ctx context.Context, userID string) (int, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// UpdateCompany updates an existing company's details.
	UpdateCompany(ctx context.Context, company domain.Company) error

	// MarkCompanyDeleted tombstones a company.
	MarkCompanyDeleted(ctx context.Context, companyID string, deletedBy string, deletedAt time.Time) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
