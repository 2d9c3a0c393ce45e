package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/middleware"
	"github.com/stockaccount/stock_account_api/internal/platform/config"
)

// RegisterRoutes mounts every API route on the engine. Auth endpoints are
// public (rate limited); everything else sits behind the auth middleware.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	registerAuthRoutes(api, services.Auth)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerAdminAuthRoutes(protected, services.Auth)
		registerUserRoutes(protected, services.User)
		registerCompanyRoutes(protected, services.Company)
		registerAccountRoutes(protected, services.Account)
		registerStockRoutes(protected, services.Stock)
		registerStockTransactionRoutes(protected, services.StockTransaction)
		registerReceiptRoutes(protected, services.Receipt)
	}
}
