package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type accountHandler struct {
	accountSvc portssvc.AccountSvcFacade
}

func newAccountHandler(accountSvc portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountSvc: accountSvc}
}

func registerAccountRoutes(rg *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountSvc)

	account := rg.Group("/Account")
	{
		account.POST("/Create", h.CreateAccount)
		account.POST("/Update", h.UpdateAccount)
		account.GET("/All", h.ListAccounts)
		account.GET("/ById/:companyId", h.ListCompanyAccounts)
		account.DELETE("/Delete/:accountId", h.DeleteAccount)
	}
}

// CreateAccount godoc
// @Summary      Create a customer account
// @Description  Creates an account under a company the caller owns. A company may hold at most 10 active accounts.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAccountRequest true "Account data"
// @Success      201 {object} dto.Response{data=dto.AccountResponse}
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Account/Create [post]
func (h *accountHandler) CreateAccount(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToAccountResponse(account), "Account created successfully")
}

// UpdateAccount godoc
// @Summary      Update a customer account
// @Description  Updates an account under a company the caller owns. At least one field must change.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateAccountRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=dto.AccountResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Account/Update [post]
func (h *accountHandler) UpdateAccount(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountSvc.UpdateAccount(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToAccountResponse(account), "Account updated successfully")
}

// ListAccounts godoc
// @Summary      List all accounts
// @Description  Returns every customer account. Admin only.
// @Tags         Account
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]dto.AccountResponse}
// @Failure      403 {object} dto.Response
// @Router       /Account/All [get]
func (h *accountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountSvc.ListAccounts(c.Request.Context(), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToAccountResponseSlice(accounts), "Accounts retrieved successfully")
}

// ListCompanyAccounts godoc
// @Summary      List a company's accounts
// @Description  Returns the customer accounts of a company the caller owns.
// @Tags         Account
// @Produce      json
// @Security     BearerAuth
// @Param        companyId path string true "Company ID"
// @Success      200 {object} dto.Response{data=[]dto.AccountResponse}
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Account/ById/{companyId} [get]
func (h *accountHandler) ListCompanyAccounts(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	accounts, err := h.accountSvc.ListCompanyAccounts(c.Request.Context(), c.Param("companyId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToAccountResponseSlice(accounts), "Accounts retrieved successfully")
}

// DeleteAccount godoc
// @Summary      Delete a customer account
// @Description  Tombstones an account. The row is kept for ledger references.
// @Tags         Account
// @Produce      json
// @Security     BearerAuth
// @Param        accountId path string true "Account ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Account/Delete/{accountId} [delete]
func (h *accountHandler) DeleteAccount(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	err := h.accountSvc.SoftDeleteAccount(c.Request.Context(), c.Param("accountId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
