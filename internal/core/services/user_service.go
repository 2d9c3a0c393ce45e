package services

import (
	"context"
	"errors"
	"time"

	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgUserNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, callerRole domain.UserRole) ([]domain.User, error) {
	if err := requireAdmin(callerRole); err != nil {
		return nil, err
	}
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, callerID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.GetUserByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != "" && req.Name != user.Name {
		user.Name = req.Name
		changed = true
	}
	if req.Surname != "" && req.Surname != user.Surname {
		user.Surname = req.Surname
		changed = true
	}
	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
			return nil, apperrors.NewConflictError(apperrors.MsgEmailRegistered)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.Email = req.Email
		changed = true
	}
	if req.PhoneNumber != "" && req.PhoneNumber != user.PhoneNumber {
		if _, err := s.userRepo.FindUserByPhoneNumber(ctx, req.PhoneNumber); err == nil {
			return nil, apperrors.NewConflictError(apperrors.MsgPhoneRegistered)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.PhoneNumber = req.PhoneNumber
		changed = true
	}

	if !changed {
		return nil, apperrors.NewValidationFailedError(apperrors.MsgNoValueToUpdate)
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = callerID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("failed to update user", "user_id", callerID, "error", err)
		return nil, err
	}

	logger.Info("user updated", "user_id", callerID)
	return user, nil
}

func (s *userService) SoftDeleteUser(ctx context.Context, targetUserID string, callerID string, callerRole domain.UserRole) error {
	if err := requireAdmin(callerRole); err != nil {
		return err
	}

	if _, err := s.GetUserByID(ctx, targetUserID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, targetUserID, callerID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.MsgUserNotFound)
		}
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("user soft deleted", "user_id", targetUserID, "deleted_by", callerID)
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, targetUserID string, callerRole domain.UserRole) error {
	if err := requireAdmin(callerRole); err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.MsgUserNotFound)
		}
		return err
	}

	middleware.GetLoggerFromCtx(ctx).Info("user permanently deleted", "user_id", targetUserID)
	return nil
}
