package services

import (
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
)

// requireAdmin gates the application-wide listing and correction endpoints.
func requireAdmin(callerRole domain.UserRole) error {
	if callerRole != domain.RoleAdmin {
		return apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess)
	}
	return nil
}
