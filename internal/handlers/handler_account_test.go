package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
	"github.com/stockaccount/stock_account_api/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, callerRole domain.UserRole) ([]domain.Account, error) {
	args := m.Called(ctx, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListCompanyAccounts(ctx context.Context, companyID, callerID string, callerRole domain.UserRole) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, callerID, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, callerID string, callerRole domain.UserRole) (*domain.Account, error) {
	args := m.Called(ctx, req, callerID, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest, callerID string, callerRole domain.UserRole) (*domain.Account, error) {
	args := m.Called(ctx, req, callerID, callerRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SoftDeleteAccount(ctx context.Context, accountID, callerID string, callerRole domain.UserRole) error {
	args := m.Called(ctx, accountID, callerID, callerRole)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccountService = new(MockAccountService)

	api := suite.router.Group("/api")
	registerAccountRoutes(api, suite.mockAccountService)
}

func (suite *AccountHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, "tester@x.example", string(role), suite.jwtSecret, time.Hour, "saa-test")
	suite.Require().NoError(err)
	return token
}

func (suite *AccountHandlerTestSuite) doJSON(method, url string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	callerID := uuid.NewString()
	companyID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		CompanyID:   companyID,
		AccountName: "Retail Customer",
		PhoneNumber: "+905551119988",
		Email:       "customer@x.example",
	}
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   companyID,
		AccountName: reqBody.AccountName,
		PhoneNumber: reqBody.PhoneNumber,
		Email:       reqBody.Email,
		Balance:     decimal.Zero,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, callerID, domain.RoleUser).
		Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/Account/Create", reqBody, suite.generateTestToken(callerID, domain.RoleUser))

	suite.Equal(http.StatusCreated, w.Code)

	var envelope dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.Equal(http.StatusCreated, envelope.StatusCode)
	suite.Nil(envelope.Errors)
	data, ok := envelope.Data.(map[string]any)
	suite.Require().True(ok)
	suite.Equal(created.AccountID, data["accountID"])
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingToken() {
	w := suite.doJSON(http.MethodPost, "/api/Account/Create", dto.CreateAccountRequest{}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_BindingFailure() {
	callerID := uuid.NewString()
	// Missing the required email field.
	body := map[string]any{
		"companyID":   uuid.NewString(),
		"accountName": "Retail Customer",
		"phoneNumber": "+905551119988",
	}

	w := suite.doJSON(http.MethodPost, "/api/Account/Create", body, suite.generateTestToken(callerID, domain.RoleUser))

	suite.Equal(http.StatusBadRequest, w.Code)

	var envelope dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.NotEmpty(envelope.Errors)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ServiceConflict() {
	callerID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		CompanyID:   uuid.NewString(),
		AccountName: "Duplicate",
		PhoneNumber: "+905551119988",
		Email:       "dup@x.example",
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, callerID, domain.RoleUser).
		Return(nil, apperrors.NewConflictError(apperrors.MsgAccountConflict)).Once()

	w := suite.doJSON(http.MethodPost, "/api/Account/Create", reqBody, suite.generateTestToken(callerID, domain.RoleUser))

	suite.Equal(http.StatusConflict, w.Code)

	var envelope dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	suite.Contains(envelope.Errors, apperrors.MsgAccountConflict)
	suite.Nil(envelope.Data)
}

func (suite *AccountHandlerTestSuite) TestListCompanyAccounts_Success() {
	callerID := uuid.NewString()
	companyID := uuid.NewString()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), CompanyID: companyID, AccountName: "First"},
		{AccountID: uuid.NewString(), CompanyID: companyID, AccountName: "Second"},
	}

	suite.mockAccountService.On("ListCompanyAccounts", mock.Anything, companyID, callerID, domain.RoleUser).
		Return(accounts, nil).Once()

	url := fmt.Sprintf("/api/Account/ById/%s", companyID)
	w := suite.doJSON(http.MethodGet, url, nil, suite.generateTestToken(callerID, domain.RoleUser))

	suite.Equal(http.StatusOK, w.Code)

	var envelope dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	list, ok := envelope.Data.([]any)
	suite.Require().True(ok)
	suite.Len(list, 2)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_ForbiddenForRegularUser() {
	callerID := uuid.NewString()

	suite.mockAccountService.On("ListAccounts", mock.Anything, domain.RoleUser).
		Return(nil, apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess)).Once()

	w := suite.doJSON(http.MethodGet, "/api/Account/All", nil, suite.generateTestToken(callerID, domain.RoleUser))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_NoContent() {
	callerID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockAccountService.On("SoftDeleteAccount", mock.Anything, accountID, callerID, domain.RoleUser).
		Return(nil).Once()

	url := fmt.Sprintf("/api/Account/Delete/%s", accountID)
	w := suite.doJSON(http.MethodDelete, url, nil, suite.generateTestToken(callerID, domain.RoleUser))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockAccountService.AssertExpectations(suite.T())
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
