package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockaccount/stock_account_api/internal/apperrors"
	"github.com/stockaccount/stock_account_api/internal/core/domain"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

type authHandler struct {
	authSvc portssvc.AuthSvcFacade
}

func newAuthHandler(authSvc portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authSvc: authSvc}
}

// registerAuthRoutes mounts the public auth endpoints behind a per-IP rate
// limit. RegisterAdmin is mounted separately on the protected group.
func registerAuthRoutes(rg *gin.RouterGroup, authSvc portssvc.AuthSvcFacade) {
	h := newAuthHandler(authSvc)

	rate, err := limiter.NewRateFromFormatted("5-M")
	if err != nil {
		panic(err)
	}
	rateLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/Auth")
	auth.Use(middleware.RateLimit(rateLimiter))
	{
		auth.POST("/Register", h.Register)
		auth.POST("/Login", h.Login)
		auth.POST("/RefreshToken", h.RefreshToken)
	}
}

// registerAdminAuthRoutes mounts the admin-only registration endpoint.
func registerAdminAuthRoutes(rg *gin.RouterGroup, authSvc portssvc.AuthSvcFacade) {
	h := newAuthHandler(authSvc)
	rg.POST("/Auth/RegisterAdmin", h.RegisterAdmin)
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account and returns fresh access and refresh tokens.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration data"
// @Success      201 {object} dto.Response{data=dto.AuthResponse}
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Auth/Register [post]
func (h *authHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.authSvc.Register(c.Request.Context(), req, domain.RoleUser)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, resp, "User registered successfully")
}

// RegisterAdmin godoc
// @Summary      Register a new admin user
// @Description  Creates an admin account. Only callable by an existing admin.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RegisterRequest true "Registration data"
// @Success      201 {object} dto.Response{data=dto.AuthResponse}
// @Failure      403 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /Auth/RegisterAdmin [post]
func (h *authHandler) RegisterAdmin(c *gin.Context) {
	if middleware.GetUserRoleFromContext(c) != domain.RoleAdmin {
		respondError(c, apperrors.NewForbiddenError(apperrors.MsgRestrictedAccess))
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.authSvc.Register(c.Request.Context(), req, domain.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, resp, "Admin registered successfully")
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns fresh access and refresh tokens.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.Response{data=dto.AuthResponse}
// @Failure      401 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /Auth/Login [post]
func (h *authHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, resp, "Login successful")
}

// RefreshToken godoc
// @Summary      Refresh the access token
// @Description  Exchanges a valid refresh token for a new token pair.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh token"
// @Success      200 {object} dto.Response{data=dto.AuthResponse}
// @Failure      401 {object} dto.Response
// @Router       /Auth/RefreshToken [post]
func (h *authHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.authSvc.RefreshToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, resp, "Token refreshed successfully")
}
