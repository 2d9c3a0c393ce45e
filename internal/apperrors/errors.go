package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no valid caller identity was presented.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller lacks permission for the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a uniqueness or concurrency conflict.
var ErrConflict = errors.New("conflict")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// Canonical user-facing messages. Handlers surface these in the response
// envelope's errors list; clients match on them, so keep them stable.
const (
	MsgInternalServerError   = "An unexpected error occurred on the server"
	MsgBadRequest            = "The request could not be understood or was missing required parameters"
	MsgUnauthorized          = "Authentication is required and has failed or has not yet been provided"
	MsgRestrictedAccess      = "You do not have permission to access this resource"
	MsgTokenNotFound         = "Authentication token not found"
	MsgInvalidOrExpiredToken = "Invalid or expired authentication token"
	MsgSessionExpired        = "This token is expired"
	MsgInvalidCredentials    = "Invalid authentication credentials"
	MsgUserNotFound          = "User not found"
	MsgEmailRegistered       = "Email address is already registered"
	MsgPhoneRegistered       = "Phone number is already registered"
	MsgNoValueToUpdate       = "There is no value found to update"
	MsgCompanyNotFound       = "Company not found"
	MsgMaxCompanyLimit       = "A user can create a maximum of 3 companies"
	MsgCompanyNameRegistered = "Company name is already registered"
	MsgCounterpartyNotFound  = "Counter company not found"
	MsgAccountNotFound       = "Account not found"
	MsgMaxAccountLimit       = "A company can hold a maximum of 10 accounts"
	MsgAccountConflict       = "An account with the same contact details already exists"
	MsgStockNotFound         = "Stock not found"
	MsgInsufficientQuantity  = "Insufficient stock quantity for the sale transaction"
	MsgStockVersionConflict  = "The stock was modified concurrently, please retry"
	MsgStockTransNotFound    = "Stock transaction not found"
	MsgReceiptNotFound       = "Receipt not found"
)

// AppError carries an HTTP-mappable status code alongside a user-facing
// message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the package sentinels by code.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrConflict, ErrDuplicate:
		return e.Code == http.StatusConflict
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	}
	return false
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewConflictError creates a 409 AppError.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewValidationFailedError creates a 400 AppError.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError creates a 401 AppError.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError creates a 403 AppError.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

// CodeOf extracts the HTTP status code from err, defaulting to 500.
func CodeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the user-facing message from err, hiding internal
// detail for anything that is not an AppError.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "Resource not found"
	case errors.Is(err, ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, ErrRefreshTokenExpired):
		return MsgSessionExpired
	case errors.Is(err, ErrForbidden):
		return MsgRestrictedAccess
	}
	return MsgInternalServerError
}
