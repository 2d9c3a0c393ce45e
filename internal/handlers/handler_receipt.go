package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type receiptHandler struct {
	receiptSvc portssvc.ReceiptSvcFacade
}

func newReceiptHandler(receiptSvc portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptSvc: receiptSvc}
}

func registerReceiptRoutes(rg *gin.RouterGroup, receiptSvc portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptSvc)

	receipt := rg.Group("/Receipt")
	{
		receipt.GET("", h.ListReceipts)
		receipt.POST("/Create", h.CreateReceipt)
		receipt.DELETE("/Delete/:receiptId", h.DeleteReceipt)
	}
}

// CreateReceipt godoc
// @Summary      Issue a receipt
// @Description  Issues a receipt against a customer account, moving stock and adjusting the balance in one atomic posting.
// @Tags         Receipt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReceiptRequest true "Receipt data"
// @Success      201 {object} dto.Response{data=dto.ReceiptResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Receipt/Create [post]
func (h *receiptHandler) CreateReceipt(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	receipt, err := h.receiptSvc.CreateReceipt(c.Request.Context(), req, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, dto.ToReceiptResponse(receipt), "Receipt created successfully")
}

// ListReceipts godoc
// @Summary      List receipts
// @Description  Returns receipts with progressive filtering by company, account and stock. Listing without a company filter is admin only.
// @Tags         Receipt
// @Produce      json
// @Security     BearerAuth
// @Param        companyId query string false "Company ID"
// @Param        accountId query string false "Account ID"
// @Param        stockId query string false "Stock ID"
// @Success      200 {object} dto.Response{data=[]dto.ReceiptResponse}
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Receipt [get]
func (h *receiptHandler) ListReceipts(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	receipts, err := h.receiptSvc.ListReceipts(c.Request.Context(), params, callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToReceiptResponseSlice(receipts), "Receipts retrieved successfully")
}

// DeleteReceipt godoc
// @Summary      Delete a receipt
// @Description  Tombstones a receipt. The ledger lines it created are untouched.
// @Tags         Receipt
// @Produce      json
// @Security     BearerAuth
// @Param        receiptId path string true "Receipt ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Receipt/Delete/{receiptId} [delete]
func (h *receiptHandler) DeleteReceipt(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	err := h.receiptSvc.SoftDeleteReceipt(c.Request.Context(), c.Param("receiptId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
