package services

import (
	"context"

	"github.com/stockaccount/stock_account_api/internal/core/domain"
	"github.com/stockaccount/stock_account_api/internal/dto"
)

// ReceiptSvcFacade defines operations on receipts.
type ReceiptSvcFacade interface {
	// CreateReceipt issues a receipt: moves stock, adjusts the account
	// balance and records all ledger lines in one atomic posting.
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, callerID string, callerRole domain.UserRole) (*domain.Receipt, error)

	// ListReceipts retrieves receipts with progressive filtering. Listing
	// without a company filter is admin only.
	ListReceipts(ctx context.Context, params dto.ListReceiptsParams, callerID string, callerRole domain.UserRole) ([]domain.Receipt, error)

	// SoftDeleteReceipt tombstones a receipt the caller may act on.
	SoftDeleteReceipt(ctx context.Context, receiptID, callerID string, callerRole domain.UserRole) error
}
