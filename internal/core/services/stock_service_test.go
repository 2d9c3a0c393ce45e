package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/core/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo    *MockStockRepository
	mockStockTxnRepo *MockStockTransactionRepository
	mockCompanyRepo  *MockCompanyRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.StockSvcFacade

	ownerID   string
	companyID string
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockStockTxnRepo = new(MockStockTransactionRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockUserRepo = new(MockUserRepository)

	authorizer := services.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo)
	suite.service = services.NewStockService(suite.mockStockRepo, suite.mockStockTxnRepo, authorizer)

	suite.ownerID = uuid.NewString()
	suite.companyID = uuid.NewString()
}

func (suite *StockServiceTestSuite) expectOwnedCompany() {
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.companyID).
		Return(&domain.Company{CompanyID: suite.companyID, UserID: suite.ownerID}, nil)
}

func (suite *StockServiceTestSuite) stockWithQuantity(quantity, price int64) *domain.Stock {
	return &domain.Stock{
		StockID:   uuid.NewString(),
		CompanyID: suite.companyID,
		Name:      "Copper Wire",
		Quantity:  decimal.NewFromInt(quantity),
		Unit:      domain.UnitMeter,
		Price:     decimal.NewFromInt(price),
		Version:   4,
	}
}

func (suite *StockServiceTestSuite) TestCreateStock_Success() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("SaveStock", ctx, mock.AnythingOfType("domain.Stock")).Return(nil).Once()

	stock, err := suite.service.CreateStock(ctx, dto.CreateStockRequest{
		CompanyID: suite.companyID,
		Name:      "Copper Wire",
		Quantity:  decimal.NewFromInt(10),
		Unit:      domain.UnitMeter,
		Price:     decimal.NewFromInt(5),
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Require().NotNil(stock)
	suite.Equal(int64(1), stock.Version)
	suite.Equal(suite.ownerID, stock.CreatedBy)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestCreateStock_InvalidUnit() {
	ctx := context.Background()
	suite.expectOwnedCompany()

	stock, err := suite.service.CreateStock(ctx, dto.CreateStockRequest{
		CompanyID: suite.companyID,
		Name:      "Copper Wire",
		Quantity:  decimal.NewFromInt(1),
		Unit:      domain.Unit("BUCKET"),
		Price:     decimal.NewFromInt(5),
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Nil(stock)
	suite.Equal(400, apperrors.CodeOf(err))
	suite.mockStockRepo.AssertNotCalled(suite.T(), "SaveStock", mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestUpdateStockQuantity_RemovalPostsOutTransaction() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()

	var posted domain.StockTransaction
	var postedDelta decimal.Decimal
	suite.mockStockTxnRepo.On("PostStockTransaction", ctx, mock.AnythingOfType("domain.StockTransaction"), mock.AnythingOfType("decimal.Decimal")).
		Run(func(args mock.Arguments) {
			posted = args.Get(1).(domain.StockTransaction)
			postedDelta = args.Get(2).(decimal.Decimal)
		}).
		Return(nil).Once()

	stock, err := suite.service.UpdateStockQuantity(ctx, dto.UpdateStockQuantityRequest{
		StockID:    existing.StockID,
		Amount:     decimal.NewFromInt(3),
		IsAddition: false,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Require().NotNil(stock)
	suite.True(stock.Quantity.Equal(decimal.NewFromInt(7)))
	suite.Equal(int64(5), stock.Version)

	suite.Equal(domain.StockOut, posted.Type)
	suite.Equal(existing.StockID, posted.StockID)
	suite.Equal(suite.companyID, posted.CompanyID)
	suite.True(posted.Quantity.Equal(decimal.NewFromInt(3)))
	suite.True(posted.UnitPrice.Equal(decimal.NewFromInt(5)))
	suite.True(posted.TotalPrice.Equal(decimal.NewFromInt(15)))
	suite.Equal("Stock quantity adjustment", posted.Description)
	suite.Equal(suite.ownerID, posted.CreatedBy)
	suite.True(postedDelta.Equal(decimal.NewFromInt(-3)))
	suite.mockStockTxnRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestUpdateStockQuantity_AdditionPostsInTransaction() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()

	var posted domain.StockTransaction
	var postedDelta decimal.Decimal
	suite.mockStockTxnRepo.On("PostStockTransaction", ctx, mock.AnythingOfType("domain.StockTransaction"), mock.AnythingOfType("decimal.Decimal")).
		Run(func(args mock.Arguments) {
			posted = args.Get(1).(domain.StockTransaction)
			postedDelta = args.Get(2).(decimal.Decimal)
		}).
		Return(nil).Once()

	stock, err := suite.service.UpdateStockQuantity(ctx, dto.UpdateStockQuantityRequest{
		StockID:    existing.StockID,
		Amount:     decimal.NewFromInt(4),
		IsAddition: true,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.True(stock.Quantity.Equal(decimal.NewFromInt(14)))
	suite.Equal(domain.StockIn, posted.Type)
	suite.True(postedDelta.Equal(decimal.NewFromInt(4)))
}

func (suite *StockServiceTestSuite) TestUpdateStockQuantity_InsufficientQuantity() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()

	stock, err := suite.service.UpdateStockQuantity(ctx, dto.UpdateStockQuantityRequest{
		StockID:    existing.StockID,
		Amount:     decimal.NewFromInt(11),
		IsAddition: false,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Nil(stock)
	suite.Equal(400, apperrors.CodeOf(err))
	suite.Equal("Insufficient stock quantity for the sale transaction", apperrors.MessageOf(err))
	suite.mockStockTxnRepo.AssertNotCalled(suite.T(), "PostStockTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestUpdateStockQuantity_RemovalOfEntireQuantity() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()
	suite.mockStockTxnRepo.On("PostStockTransaction", ctx, mock.AnythingOfType("domain.StockTransaction"), mock.AnythingOfType("decimal.Decimal")).
		Return(nil).Once()

	stock, err := suite.service.UpdateStockQuantity(ctx, dto.UpdateStockQuantityRequest{
		StockID:    existing.StockID,
		Amount:     decimal.NewFromInt(10),
		IsAddition: false,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.True(stock.Quantity.IsZero())
}

func (suite *StockServiceTestSuite) TestUpdateStockQuantity_NonPositiveAmount() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()

	_, err := suite.service.UpdateStockQuantity(ctx, dto.UpdateStockQuantityRequest{
		StockID:    existing.StockID,
		Amount:     decimal.Zero,
		IsAddition: true,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(400, apperrors.CodeOf(err))
}

func (suite *StockServiceTestSuite) TestUpdateStockQuantity_StockNotFound() {
	ctx := context.Background()

	suite.mockStockRepo.On("FindStockByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateStockQuantity(ctx, dto.UpdateStockQuantityRequest{
		StockID:    "missing",
		Amount:     decimal.NewFromInt(1),
		IsAddition: true,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(404, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgStockNotFound, apperrors.MessageOf(err))
}

func (suite *StockServiceTestSuite) TestUpdateStock_ForbiddenForNonOwner() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()

	price := decimal.NewFromInt(9)
	_, err := suite.service.UpdateStock(ctx, dto.UpdateStockRequest{
		StockID: existing.StockID,
		Price:   &price,
	}, "not-the-owner", domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(403, apperrors.CodeOf(err))
	suite.mockStockRepo.AssertNotCalled(suite.T(), "UpdateStock", mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestUpdateStock_BumpsVersionAfterWrite() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()
	suite.mockStockRepo.On("UpdateStock", ctx, mock.AnythingOfType("domain.Stock")).Return(nil).Once()

	price := decimal.NewFromInt(9)
	stock, err := suite.service.UpdateStock(ctx, dto.UpdateStockRequest{
		StockID: existing.StockID,
		Price:   &price,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Equal(int64(5), stock.Version)
	suite.True(stock.Price.Equal(price))
}

func (suite *StockServiceTestSuite) TestUpdateStock_VersionConflictPropagates() {
	ctx := context.Background()
	existing := suite.stockWithQuantity(10, 5)
	suite.expectOwnedCompany()
	suite.mockStockRepo.On("FindStockByID", ctx, existing.StockID).Return(existing, nil).Once()
	suite.mockStockRepo.On("UpdateStock", ctx, mock.AnythingOfType("domain.Stock")).
		Return(apperrors.NewConflictError(apperrors.MsgStockVersionConflict)).Once()

	price := decimal.NewFromInt(9)
	_, err := suite.service.UpdateStock(ctx, dto.UpdateStockRequest{
		StockID: existing.StockID,
		Price:   &price,
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(409, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgStockVersionConflict, apperrors.MessageOf(err))
}

func (suite *StockServiceTestSuite) TestDeleteStock_AdminOnly() {
	ctx := context.Background()
	adminID := uuid.NewString()

	err := suite.service.DeleteStock(ctx, "stock-1", adminID, domain.RoleUser)
	suite.Require().Error(err)
	suite.Equal(403, apperrors.CodeOf(err))

	suite.mockStockRepo.On("MarkStockDeleted", ctx, "stock-1", adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	err = suite.service.DeleteStock(ctx, "stock-1", adminID, domain.RoleAdmin)
	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestDeleteStock_RecordsDeletingAdmin() {
	ctx := context.Background()
	adminID := uuid.NewString()

	suite.mockStockRepo.On("MarkStockDeleted", ctx, "stock-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			deletedBy := args.String(2)
			suite.NotEmpty(deletedBy)
			suite.Equal(adminID, deletedBy)
		}).
		Return(nil).Once()

	err := suite.service.DeleteStock(ctx, "stock-1", adminID, domain.RoleAdmin)
	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
