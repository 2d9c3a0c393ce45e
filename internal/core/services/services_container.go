package services

import (
	portsrepo "github.com/stockaccount/stock_account_api/internal/core/ports/repositories"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/platform/config"
)

// NewServiceContainer wires every application service with its repositories.
// The company service doubles as the authorizer injected into each
// company-scoped service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	companySvc := NewCompanyService(repos.CompanyRepo, repos.UserRepo)

	return &portssvc.ServiceContainer{
		Auth:             NewAuthService(cfg, repos.UserRepo),
		User:             NewUserService(repos.UserRepo),
		Company:          companySvc,
		Account:          NewAccountService(repos.AccountRepo, companySvc),
		Stock:            NewStockService(repos.StockRepo, repos.StockTransactionRepo, companySvc),
		StockTransaction: NewStockTransactionService(repos.StockTransactionRepo, repos.StockRepo, repos.CompanyRepo, companySvc),
		Receipt:          NewReceiptService(repos.ReceiptRepo, repos.AccountRepo, repos.StockRepo, companySvc),
	}
}
