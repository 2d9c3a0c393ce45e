package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

// respondSuccess writes the uniform success envelope.
func respondSuccess(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, dto.NewSuccessResponse(statusCode, data, message))
}

// respondError maps a service error onto the uniform failure envelope.
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	message := apperrors.MessageOf(err)
	if code == http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed", "error", err)
	}
	c.JSON(code, dto.NewErrorResponse(code, message, []string{message}))
}

// respondBindingError writes a 400 envelope with field-level details.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(http.StatusBadRequest, apperrors.MsgBadRequest, dto.FormatValidationErrors(err)))
}

// callerIdentity pulls the authenticated caller from the request context.
// The auth middleware guarantees both values on protected routes.
func callerIdentity(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(http.StatusUnauthorized, apperrors.MsgUnauthorized, []string{apperrors.MsgTokenNotFound}))
	}
	return userID, ok
}
