package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// ListCompanies retrieves all companies. Admin only.
	ListCompanies(ctx context.Context, callerRole domain.UserRole) ([]domain.Company, error)

	// ListUserCompanies retrieves the companies owned by targetUserID.
	// Callers may only list their own companies unless they are admin.
	ListUserCompanies(ctx context.Context, targetUserID, callerID string, callerRole domain.UserRole) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany persists a new company owned by the caller.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, callerID string) (*domain.Company, error)

	// UpdateCompany updates a company owned by the caller.
	UpdateCompany(ctx context.Context, req dto.UpdateCompanyRequest, callerID string, callerRole domain.UserRole) (*domain.Company, error)

	// SoftDeleteCompany tombstones a company owned by the caller.
	SoftDeleteCompany(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) error
}

// CompanyAuthorizerSvc centralizes the company ownership policy used by
// every company-scoped operation in the application.
type CompanyAuthorizerSvc interface {
	// AuthorizeCompanyAction loads the company and verifies the caller may
	// act on it. Admins may act on any company. Returns the company on
	// success, a not-found error for absent or tombstoned companies, and a
	// forbidden error for ownership mismatches.
	AuthorizeCompanyAction(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) (*domain.Company, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyAuthorizerSvc
}
