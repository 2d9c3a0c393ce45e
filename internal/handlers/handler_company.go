package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type companyHandler struct {
	companySvc portssvc.CompanySvcFacade
}

func newCompanyHandler(companySvc portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companySvc: companySvc}
}

func registerCompanyRoutes(rg *gin.RouterGroup, companySvc portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companySvc)

	company := rg.Group("/Company")
	{
		company.GET("/all", h.ListCompanies)
		company.GET("/GetUserCompanies/:userId", h.GetUserCompanies)
		company.POST("/CreateCompany", h.CreateCompany)
		company.POST("/Update", h.UpdateCompany)
		company.DELETE("/Delete/:companyId", h.DeleteCompany)
	}
}

// ListCompanies godoc
// @Summary      List all companies
// @Description  Returns every company. Admin only.
// @Tags         Company
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]dto.CompanyResponse}
// @Failure      403 {object} dto.Response
// @Router       /Company/all [get]
func (h *companyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companySvc.ListCompanies(c.Request.Context(), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToCompanyResponseSlice(companies), "Companies retrieved successfully")
}

// GetUserCompanies godoc
// @Summary      List a user's companies
// @Description  Returns the companies owned by the given user. Callers may only list their own unless admin.
// @Tags         Company
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      200 {object} dto.Response{data=[]dto.CompanyResponse}
// @Failure      403 {object} dto.Response
// @Router       /Company/GetUserCompanies/{userId} [get]
func (h *companyHandler) GetUserCompanies(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	companies, err := h.companySvc.ListUserCompanies(c.Request.Context(), c.Param("userId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToCompanyResponseSlice(companies), "Companies retrieved successfully")
}

// CreateCompany godoc
// @Summary      Create a company
// @Description  Creates a company owned by the caller. A user may own at most 3 active companies.
// @Tags         Company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCompanyRequest true "Company data"
// @Success      201 {object} dto.Response{data=dto.CompanyResponse}
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Company/CreateCompany [post]
func (h *companyHandler) CreateCompany(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	company, err := h.companySvc.CreateCompany(c.Request.Context(), req, callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToCompanyResponse(company), "Company created successfully")
}

// UpdateCompany godoc
// @Summary      Update a company
// @Description  Updates a company the caller owns. At least one field must change.
// @Tags         Company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateCompanyRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=dto.CompanyResponse}
// @Failure      400 {object} dto.Response
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Company/Update [post]
func (h *companyHandler) UpdateCompany(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	company, err := h.companySvc.UpdateCompany(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToCompanyResponse(company), "Company updated successfully")
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Description  Tombstones a company the caller owns.
// @Tags         Company
// @Produce      json
// @Security     BearerAuth
// @Param        companyId path string true "Company ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Company/Delete/{companyId} [delete]
func (h *companyHandler) DeleteCompany(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	err := h.companySvc.SoftDeleteCompany(c.Request.Context(), c.Param("companyId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
