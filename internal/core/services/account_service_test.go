package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/core/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockCompanyRepo *MockCompanyRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.AccountSvcFacade

	ownerID   string
	companyID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockUserRepo = new(MockUserRepository)

	authorizer := services.NewCompanyService(suite.mockCompanyRepo, suite.mockUserRepo)
	suite.service = services.NewAccountService(suite.mockAccountRepo, authorizer)

	suite.ownerID = uuid.NewString()
	suite.companyID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) expectOwnedCompany() {
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, suite.companyID).
		Return(&domain.Company{CompanyID: suite.companyID, UserID: suite.ownerID}, nil)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	req := dto.CreateAccountRequest{
		CompanyID:   suite.companyID,
		AccountName: "Retail Customer",
		PhoneNumber: "+905551119988",
		Email:       "customer@x.example",
	}

	suite.mockAccountRepo.On("CountActiveAccountsByCompanyID", ctx, suite.companyID).Return(2, nil).Once()
	suite.mockAccountRepo.On("FindAccountByContact", ctx, suite.companyID, req.Email, req.PhoneNumber, "").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(account.Balance.IsZero())
	suite.Equal(suite.companyID, account.CompanyID)
	suite.Equal(suite.ownerID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MaxLimitReached() {
	ctx := context.Background()
	suite.expectOwnedCompany()

	suite.mockAccountRepo.On("CountActiveAccountsByCompanyID", ctx, suite.companyID).
		Return(domain.MaxAccountsPerCompany, nil).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{
		CompanyID:   suite.companyID,
		AccountName: "Eleventh",
		PhoneNumber: "1",
		Email:       "eleventh@x.example",
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.Equal(403, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgMaxAccountLimit, apperrors.MessageOf(err))
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ContactConflict() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	req := dto.CreateAccountRequest{
		CompanyID:   suite.companyID,
		AccountName: "Duplicate",
		PhoneNumber: "+905551119988",
		Email:       "dup@x.example",
	}

	suite.mockAccountRepo.On("CountActiveAccountsByCompanyID", ctx, suite.companyID).Return(1, nil).Once()
	suite.mockAccountRepo.On("FindAccountByContact", ctx, suite.companyID, req.Email, req.PhoneNumber, "").
		Return(&domain.Account{AccountID: uuid.NewString()}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.Equal(409, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgAccountConflict, apperrors.MessageOf(err))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ForbiddenForNonOwner() {
	ctx := context.Background()
	suite.expectOwnedCompany()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{
		CompanyID:   suite.companyID,
		AccountName: "Someone",
		PhoneNumber: "2",
		Email:       "someone@x.example",
	}, "not-the-owner", domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(403, apperrors.CodeOf(err))
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "CountActiveAccountsByCompanyID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_CompanyMismatchReadsAsNotFound() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID, CompanyID: "another-company"}, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, dto.UpdateAccountRequest{
		CompanyID:   suite.companyID,
		AccountID:   accountID,
		AccountName: "Renamed",
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(404, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgAccountNotFound, apperrors.MessageOf(err))
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ContactChangeChecksConflict() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		CompanyID:   suite.companyID,
		AccountName: "Customer",
		PhoneNumber: "+905550000001",
		Email:       "old@x.example",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByContact", ctx, suite.companyID, "new@x.example", existing.PhoneNumber, accountID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, dto.UpdateAccountRequest{
		CompanyID: suite.companyID,
		AccountID: accountID,
		Email:     "new@x.example",
	}, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.Equal("new@x.example", account.Email)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoValueToUpdate() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		CompanyID:   suite.companyID,
		AccountName: "Customer",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, dto.UpdateAccountRequest{
		CompanyID:   suite.companyID,
		AccountID:   accountID,
		AccountName: "Customer",
	}, suite.ownerID, domain.RoleUser)

	suite.Require().Error(err)
	suite.Equal(400, apperrors.CodeOf(err))
	suite.Equal(apperrors.MsgNoValueToUpdate, apperrors.MessageOf(err))
}

func (suite *AccountServiceTestSuite) TestSoftDeleteAccount_Success() {
	ctx := context.Background()
	suite.expectOwnedCompany()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).
		Return(&domain.Account{AccountID: accountID, CompanyID: suite.companyID}, nil).Once()
	suite.mockAccountRepo.On("MarkAccountDeleted", ctx, accountID, suite.ownerID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.SoftDeleteAccount(ctx, accountID, suite.ownerID, domain.RoleUser)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
