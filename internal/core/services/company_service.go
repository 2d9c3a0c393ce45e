package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewCompanyService creates the company service. It also serves as the
// company authorizer for every other company-scoped service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo, userRepo: userRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// AuthorizeCompanyAction is the single ownership check used by every
// company-scoped operation. Admins may act on any company.
func (s *companyService) AuthorizeCompanyAction(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgCompanyNotFound)
		}
		return nil, err
	}
	if callerRole != domain.RoleAdmin && company.UserID != callerID {
		return nil, apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, callerRole domain.UserRole) ([]domain.Company, error) {
	if err := requireAdmin(callerRole); err != nil {
		return nil, err
	}
	return s.companyRepo.ListCompanies(ctx)
}

func (s *companyService) ListUserCompanies(ctx context.Context, targetUserID, callerID string, callerRole domain.UserRole) ([]domain.Company, error) {
	if callerRole != domain.RoleAdmin && targetUserID != callerID {
		return nil, apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess)
	}
	return s.companyRepo.ListCompaniesByUserID(ctx, targetUserID)
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, callerID string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, callerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgUserNotFound)
		}
		return nil, err
	}

	count, err := s.companyRepo.CountActiveCompaniesByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxCompaniesPerUser {
		return nil, apperrors.NewValidationFailedError(apperrors.MsgMaxCompanyLimit)
	}

	if _, err := s.companyRepo.FindCompanyByName(ctx, req.CompanyName); err == nil {
		return nil, apperrors.NewConflictError(apperrors.MsgCompanyNameRegistered)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.companyRepo.FindCompanyByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError(apperrors.MsgEmailRegistered)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.companyRepo.FindCompanyByPhoneNumber(ctx, req.PhoneNumber); err == nil {
		return nil, apperrors.NewConflictError(apperrors.MsgPhoneRegistered)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		UserID:      callerID,
		CompanyName: req.CompanyName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
	}
	company.CreatedAt = now
	company.CreatedBy = callerID
	company.LastUpdatedAt = now
	company.LastUpdatedBy = callerID

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("failed to save company", "error", err)
		return nil, err
	}

	logger.Info("company created", "company_id", company.CompanyID, "user_id", callerID)
	return &company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, req dto.UpdateCompanyRequest, callerID string, callerRole domain.UserRole) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := s.AuthorizeCompanyAction(ctx, req.CompanyID, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.CompanyName != "" && req.CompanyName != company.CompanyName {
		if _, err := s.companyRepo.FindCompanyByName(ctx, req.CompanyName); err == nil {
			return nil, apperrors.NewConflictError(apperrors.MsgCompanyNameRegistered)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		company.CompanyName = req.CompanyName
		changed = true
	}
	if req.PhoneNumber != "" && req.PhoneNumber != company.PhoneNumber {
		if _, err := s.companyRepo.FindCompanyByPhoneNumber(ctx, req.PhoneNumber); err == nil {
			return nil, apperrors.NewConflictError(apperrors.MsgPhoneRegistered)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		company.PhoneNumber = req.PhoneNumber
		changed = true
	}
	if req.Email != "" && req.Email != company.Email {
		if _, err := s.companyRepo.FindCompanyByEmail(ctx, req.Email); err == nil {
			return nil, apperrors.NewConflictError(apperrors.MsgEmailRegistered)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		company.Email = req.Email
		changed = true
	}
	if req.Address != "" && req.Address != company.Address {
		company.Address = req.Address
		changed = true
	}

	if !changed {
		return nil, apperrors.NewValidationFailedError(apperrors.MsgNoValueToUpdate)
	}

	company.LastUpdatedAt = time.Now()
	company.LastUpdatedBy = callerID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		logger.Error("failed to update company", "company_id", company.CompanyID, "error", err)
		return nil, err
	}

	logger.Info("company updated", "company_id", company.CompanyID)
	return company, nil
}

func (s *companyService) SoftDeleteCompany(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) error {
	company, err := s.AuthorizeCompanyAction(ctx, companyID, callerID, callerRole)
	if err != nil {
		return err
	}

	if err := s.companyRepo.MarkCompanyDeleted(ctx, company.CompanyID, callerID, time.Now()); err != nil {
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("company soft deleted", "company_id", companyID, "deleted_by", callerID)
	return nil
}
