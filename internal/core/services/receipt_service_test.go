package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/core/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	mockReceiptRepo *MockReceiptRepository
	mockAccountRepo *MockAccountRepository
	mockStockRepo   *MockStockRepository
	mockCompanyRepo *MockCompanyRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.ReceiptSvcFacade

	ownerID   string
	companyID string
	accountID string
	stockID   string
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.mockReceiptRepo = new(MockReceiptRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockUserRepo = new(MockUserRepository)

	authorizer := services.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo)
	suite.service = services.NewReceiptService(suite.mockReceiptRepo, suite.mockAccountRepo, suite.mockStockRepo, authorizer)

	suite.ownerID = uuid.NewString()
	suite.companyID = uuid.NewString()
	suite.accountID = uuid.NewString()
	suite.stockID = uuid.NewString()
}

func (suite *ReceiptServiceTestSuite) expectOwnedCompany() {
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.companyID).
		Return(&domain.Company{CompanyID: suite.companyID, UserID: suite.ownerID}, nil)
}

func (suite *ReceiptServiceTestSuite) expectAccount(balance int64) {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.accountID).
		Return(&domain.Account{
			AccountID: suite.accountID,
			CompanyID: suite.companyID,
			Balance:   decimal.NewFromInt(balance),
		}, nil)
}

func (suite *ReceiptServiceTestSuite) expectStock(quantity, price int64) {
	suite.mockStockRepo.On("FindStockByID", mock.Anything, suite.stockID).
		Return(&domain.Stock{
			StockID:   suite.stockID,
			CompanyID: suite.companyID,
			Quantity:  decimal.NewFromInt(quantity),
			Price:     decimal.NewFromInt(price),
		}, nil)
}

type postedReceipt struct {
	receipt       domain.Receipt
	stockTxn      domain.StockTransaction
	actTxn        domain.ActTransaction
	quantityDelta decimal.Decimal
	balanceDelta  decimal.Decimal
}

func (suite *ReceiptServiceTestSuite) capturePostReceipt(dest *postedReceipt) {
	suite.mockReceiptRepo.On("PostReceipt", mock.Anything,
		mock.AnythingOfType("domain.Receipt"),
		mock.AnythingOfType("domain.StockTransaction"),
		mock.AnythingOfType("domain.ActTransaction"),
		mock.AnythingOfType("decimal.Decimal"),
		mock.AnythingOfType("decimal.Decimal")).
		Run(func(args mock.Arguments) {
			dest.receipt = args.Get(1).(domain.Receipt)
			dest.stockTxn = args.Get(2).(domain.StockTransaction)
			dest.actTxn = args.Get(3).(domain.ActTransaction)
			dest.quantityDelta = args.Get(4).(decimal.Decimal)
			dest.balanceDelta = args.Get(5).(decimal.Decimal)
		}).
		Return(nil).Once()
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_SalePostsBothLedgerLines() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	suite.expectAccount(0)
	suite.expectStock(10, 5)

	var posted postedReceipt
	suite.capturePostReceipt(&posted)

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		CompanyID:   suite.companyID,
		AccountID:   suite.accountID,
		StockID:     suite.stockID,
		Type:        domain.ReceiptSale,
		Quantity:    decimal.NewFromInt(3),
		Description: "counter sale",
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)

	// Receipt snapshots the stock price at posting time.
	suite.True(receipt.UnitPrice.Equal(decimal.NewFromInt(5)))
	suite.True(receipt.TotalAmount.Equal(decimal.NewFromInt(15)))

	// A sale moves stock out and debits the account.
	suite.True(posted.quantityDelta.Equal(decimal.NewFromInt(-3)))
	suite.True(posted.balanceDelta.Equal(decimal.NewFromInt(15)))
	suite.Equal(domain.StockOut, posted.stockTxn.Type)
	suite.True(posted.stockTxn.TotalPrice.Equal(decimal.NewFromInt(15)))
	suite.True(posted.actTxn.Amount.Equal(decimal.NewFromInt(15)))
	suite.Equal(receipt.ReceiptID, posted.actTxn.ReceiptID)
	suite.Equal("An invoice issued.", posted.actTxn.Description)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_ReturnInversesAllDeltas() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	suite.expectAccount(100)
	suite.expectStock(10, 5)

	var posted postedReceipt
	suite.capturePostReceipt(&posted)

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		CompanyID: suite.companyID,
		AccountID: suite.accountID,
		StockID:   suite.stockID,
		Type:      domain.ReceiptReturn,
		Quantity:  decimal.NewFromInt(2),
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Require().NotNil(receipt)

	suite.True(posted.quantityDelta.Equal(decimal.NewFromInt(2)))
	suite.True(posted.balanceDelta.Equal(decimal.NewFromInt(-10)))
	suite.Equal(domain.StockIn, posted.stockTxn.Type)
	suite.True(posted.actTxn.Amount.Equal(decimal.NewFromInt(-10)))
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_SaleInsufficientQuantity() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	suite.expectAccount(0)
	suite.expectStock(10, 5)

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		CompanyID: suite.companyID,
		AccountID: suite.accountID,
		StockID:   suite.stockID,
		Type:      domain.ReceiptSale,
		Quantity:  decimal.NewFromInt(11),
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.Equal(400, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgInsufficientQuantity, apperrors.MessageOf(err))
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "PostReceipt",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_ReturnIgnoresQuantityCeiling() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	suite.expectAccount(0)
	suite.expectStock(10, 5)

	var posted postedReceipt
	suite.capturePostReceipt(&posted)

	_, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		CompanyID: suite.companyID,
		AccountID: suite.accountID,
		StockID:   suite.stockID,
		Type:      domain.ReceiptReturn,
		Quantity:  decimal.NewFromInt(25),
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.True(posted.quantityDelta.Equal(decimal.NewFromInt(25)))
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt_AccountOfAnotherCompany() {
	ctx := context.Background()
	suite.expectOwnedCompany()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.accountID).
		Return(&domain.Account{AccountID: suite.accountID, CompanyID: "another-company"}, nil).Once()

	receipt, err := suite.service.CreateReceipt(ctx, dto.CreateReceiptRequest{
		CompanyID: suite.companyID,
		AccountID: suite.accountID,
		StockID:   suite.stockID,
		Type:      domain.ReceiptSale,
		Quantity:  decimal.NewFromInt(1),
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.Equal(404, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgAccountNotFound, apperrors.MessageOf(err))
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_WithoutCompanyRequiresAdmin() {
	ctx := context.Background()

	_, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{}, suite.ownerID, domain.RoleUser)
	suite.Require().Error(err)
	suite.Equal(403, apperrors.CodeOf(err))

	suite.mockReceiptRepo.On("ListReceipts", ctx, portsrepo.ReceiptListFilter{}).
		Return([]domain.Receipt{}, nil).Once()
	receipts, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{}, suite.ownerID, domain.RoleAdmin)
	suite.Require().NoError(err)
	suite.Empty(receipts)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_FilterAccountOfAnotherCompany() {
	ctx := context.Background()
	suite.expectOwnedCompany()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.accountID).
		Return(&domain.Account{AccountID: suite.accountID, CompanyID: "another-company"}, nil).Once()

	_, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{
		CompanyID: suite.companyID,
		AccountID: suite.accountID,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(403, apperrors.CodeOf(err))
	suite.mockReceiptRepo.AssertNotCalled(suite.T(), "ListReceipts", mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestListReceipts_CompanyScoped() {
	ctx := context.Background()
	suite.expectOwnedCompany()

	suite.mockReceiptRepo.On("ListReceipts", ctx, portsrepo.ReceiptListFilter{CompanyID: suite.companyID}).
		Return([]domain.Receipt{{ReceiptID: uuid.NewString()}}, nil).Once()

	receipts, err := suite.service.ListReceipts(ctx, dto.ListReceiptsParams{CompanyID: suite.companyID}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Len(receipts, 1)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestSoftDeleteReceipt_NotFound() {
	ctx := context.Background()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SoftDeleteReceipt(ctx, "missing", suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(404, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgReceiptNotFound, apperrors.MessageOf(err))
}

func (suite *ReceiptServiceTestSuite) TestSoftDeleteReceipt_Success() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	receiptID := uuid.NewString()

	suite.mockReceiptRepo.On("FindReceiptByID", ctx, receiptID).
		Return(&domain.Receipt{ReceiptID: receiptID, CompanyID: suite.companyID}, nil).Once()
	suite.mockReceiptRepo.On("MarkReceiptDeleted", ctx, receiptID, suite.ownerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.SoftDeleteReceipt(ctx, receiptID, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.mockReceiptRepo.AssertExpectations(suite.T())
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
