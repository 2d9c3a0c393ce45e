package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type stockHandler struct {
	stockSvc portssvc.StockSvcFacade
}

func newStockHandler(stockSvc portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockSvc: stockSvc}
}

func registerStockRoutes(rg *gin.RouterGroup, stockSvc portssvc.StockSvcFacade) {
	h := newStockHandler(stockSvc)

	stock := rg.Group("/Stock")
	{
		stock.GET("/All", h.ListStocks)
		stock.GET("/CompanyStocks/:companyId", h.ListCompanyStocks)
		stock.POST("/Create", h.CreateStock)
		stock.POST("/Update", h.UpdateStock)
		stock.POST("/UpdateQuantity", h.UpdateStockQuantity)
		stock.DELETE("/SoftDelete/:stockId", h.SoftDeleteStock)
		stock.DELETE("/Delete/:stockId", h.DeleteStock)
	}
}

// ListStocks godoc
// @Summary      List all stocks
// @Description  Returns every stock item. Admin only.
// @Tags         Stock
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]dto.StockResponse}
// @Failure      403 {object} dto.Response
// @Router       /Stock/All [get]
func (h *stockHandler) ListStocks(c *gin.Context) {
	stocks, err := h.stockSvc.ListStocks(c.Request.Context(), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToStockResponseSlice(stocks), "Stocks retrieved successfully")
}

// ListCompanyStocks godoc
// @Summary      List a company's stocks
// @Description  Returns the stock items of a company the caller owns.
// @Tags         Stock
// @Produce      json
// @Security     BearerAuth
// @Param        companyId path string true "Company ID"
// @Success      200 {object} dto.Response{data=[]dto.StockResponse}
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Stock/CompanyStocks/{companyId} [get]
func (h *stockHandler) ListCompanyStocks(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	stocks, err := h.stockSvc.ListCompanyStocks(c.Request.Context(), c.Param("companyId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToStockResponseSlice(stocks), "Stocks retrieved successfully")
}

// CreateStock godoc
// @Summary      Create a stock item
// @Description  Creates a stock item under a company the caller owns.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateStockRequest true "Stock data"
// @Success      201 {object} dto.Response{data=dto.StockResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Stock/Create [post]
func (h *stockHandler) CreateStock(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stock, err := h.stockSvc.CreateStock(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToStockResponse(stock), "Stock created successfully")
}

// UpdateStock godoc
// @Summary      Update a stock item
// @Description  Updates a stock item's details. At least one field must change.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateStockRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=dto.StockResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Stock/Update [post]
func (h *stockHandler) UpdateStock(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stock, err := h.stockSvc.UpdateStock(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToStockResponse(stock), "Stock updated successfully")
}

// UpdateStockQuantity godoc
// @Summary      Adjust a stock's quantity
// @Description  Applies a quantity adjustment and posts the matching stock transaction atomically.
// @Tags         Stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateStockQuantityRequest true "Adjustment"
// @Success      200 {object} dto.Response{data=dto.StockResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Stock/UpdateQuantity [post]
func (h *stockHandler) UpdateStockQuantity(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateStockQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stock, err := h.stockSvc.UpdateStockQuantity(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToStockResponse(stock), "Stock quantity updated successfully")
}

// SoftDeleteStock godoc
// @Summary      Soft delete a stock item
// @Description  Tombstones a stock item the caller may act on.
// @Tags         Stock
// @Produce      json
// @Security     BearerAuth
// @Param        stockId path string true "Stock ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Stock/SoftDelete/{stockId} [delete]
func (h *stockHandler) SoftDeleteStock(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	err := h.stockSvc.SoftDeleteStock(c.Request.Context(), c.Param("stockId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteStock godoc
// @Summary      Delete a stock item
// @Description  Tombstones a stock item regardless of ownership. Ledger lines keep referencing it. Admin only.
// @Tags         Stock
// @Produce      json
// @Security     BearerAuth
// @Param        stockId path string true "Stock ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Stock/Delete/{stockId} [delete]
func (h *stockHandler) DeleteStock(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	err := h.stockSvc.DeleteStock(c.Request.Context(), c.Param("stockId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
