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
	"github.com/stockaccount/stock_account_api/internal/platform/config"
	"github.com/stockaccount/stock_account_api/internal/utils"
)

type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, role domain.UserRole) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError(apperrors.MsgEmailRegistered)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("failed to check email uniqueness", "error", err)
		return nil, err
	}

	if _, err := s.userRepo.FindUserByPhoneNumber(ctx, req.PhoneNumber); err == nil {
		return nil, apperrors.NewConflictError(apperrors.MsgPhoneRegistered)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("failed to check phone uniqueness", "error", err)
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		return nil, apperrors.NewAppError(500, apperrors.MsgInternalServerError, err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		Role:         role,
	}
	user.CreatedAt = now
	user.CreatedBy = user.UserID
	user.LastUpdatedAt = now
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("failed to save user", "error", err)
		return nil, err
	}

	logger.Info("user registered", "user_id", user.UserID, "role", user.Role)
	return s.issueTokens(ctx, &user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgUserNotFound)
		}
		logger.Error("failed to look up user by email", "error", err)
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError(apperrors.MsgInvalidCredentials)
	}

	logger.Info("user logged in", "user_id", user.UserID)
	return s.issueTokens(ctx, user)
}

func (s *authService) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tokenHash := utils.HashRefreshToken(req.RefreshToken)
	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(apperrors.MsgInvalidOrExpiredToken)
		}
		logger.Error("failed to look up user by refresh token", "error", err)
		return nil, err
	}

	if user.RefreshTokenExpiryTime == nil || user.RefreshTokenExpiryTime.Before(time.Now()) {
		// Clear the stale token so it can never be replayed.
		if clearErr := s.userRepo.UpdateRefreshToken(ctx, user.UserID, "", nil); clearErr != nil {
			logger.Error("failed to clear expired refresh token", "error", clearErr)
		}
		return nil, apperrors.NewUnauthorizedError(apperrors.MsgSessionExpired)
	}

	return s.issueTokens(ctx, user)
}

// issueTokens creates a fresh access token and rotates the refresh token,
// persisting only the refresh token's hash.
func (s *authService) issueTokens(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Email, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("failed to generate access token", "error", err)
		return nil, apperrors.NewAppError(500, apperrors.MsgInternalServerError, err)
	}
	accessExpiry := time.Now().Add(s.cfg.JWTExpiryDuration)

	refreshToken, err := utils.GenerateSecureRandomString(64)
	if err != nil {
		logger.Error("failed to generate refresh token", "error", err)
		return nil, apperrors.NewAppError(500, apperrors.MsgInternalServerError, err)
	}
	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), &refreshExpiry); err != nil {
		logger.Error("failed to store refresh token", "error", err)
		return nil, err
	}

	resp := dto.ToAuthResponse(user, accessToken, accessExpiry, refreshToken)
	return &resp, nil
}
