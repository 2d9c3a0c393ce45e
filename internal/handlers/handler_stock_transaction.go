package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type stockTransactionHandler struct {
	stockTxnSvc portssvc.StockTransactionSvcFacade
}

func newStockTransactionHandler(stockTxnSvc portssvc.StockTransactionSvcFacade) *stockTransactionHandler {
	return &stockTransactionHandler{stockTxnSvc: stockTxnSvc}
}

func registerStockTransactionRoutes(rg *gin.RouterGroup, stockTxnSvc portssvc.StockTransactionSvcFacade) {
	h := newStockTransactionHandler(stockTxnSvc)

	st := rg.Group("/StockTransaction")
	{
		st.POST("", h.CreateStockTransaction)
		st.GET("/All", h.ListStockTransactions)
		st.GET("/StockTransactions/:stockId", h.ListStockTransactionsByStock)
		st.DELETE("/:id", h.DeleteStockTransaction)
	}
}

// CreateStockTransaction godoc
// @Summary      Post a stock transaction
// @Description  Posts a stock movement, adjusting the stock quantity and recording the ledger line atomically.
// @Tags         StockTransaction
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateStockTransactionRequest true "Transaction data"
// @Success      201 {object} dto.Response{data=dto.StockTransactionResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /StockTransaction [post]
func (h *stockTransactionHandler) CreateStockTransaction(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateStockTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	txn, err := h.stockTxnSvc.CreateStockTransaction(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToStockTransactionResponse(txn), "Stock transaction created successfully")
}

// ListStockTransactions godoc
// @Summary      List all stock transactions
// @Description  Returns every stock ledger line. Admin only.
// @Tags         StockTransaction
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]dto.StockTransactionResponse}
// @Failure      403 {object} dto.Response
// @Router       /StockTransaction/All [get]
func (h *stockTransactionHandler) ListStockTransactions(c *gin.Context) {
	txns, err := h.stockTxnSvc.ListStockTransactions(c.Request.Context(), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToStockTransactionResponseSlice(txns), "Stock transactions retrieved successfully")
}

// ListStockTransactionsByStock godoc
// @Summary      List a stock's transactions
// @Description  Returns the ledger lines of one stock the caller may act on.
// @Tags         StockTransaction
// @Produce      json
// @Security     BearerAuth
// @Param        stockId path string true "Stock ID"
// @Success      200 {object} dto.Response{data=[]dto.StockTransactionResponse}
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /StockTransaction/StockTransactions/{stockId} [get]
func (h *stockTransactionHandler) ListStockTransactionsByStock(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	txns, err := h.stockTxnSvc.ListStockTransactionsByStock(c.Request.Context(), c.Param("stockId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToStockTransactionResponseSlice(txns), "Stock transactions retrieved successfully")
}

// DeleteStockTransaction godoc
// @Summary      Delete a stock transaction
// @Description  Permanently removes a ledger line. Admin-only correction path.
// @Tags         StockTransaction
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Stock transaction ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /StockTransaction/{id} [delete]
func (h *stockTransactionHandler) DeleteStockTransaction(c *gin.Context) {
	err := h.stockTxnSvc.DeleteStockTransaction(c.Request.Context(), c.Param("id"), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
