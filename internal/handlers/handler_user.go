package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stockaccount/stock_account_api/internal/core/ports/services"
	"github.com/stockaccount/stock_account_api/internal/dto"
	"github.com/stockaccount/stock_account_api/internal/middleware"
)

type userHandler struct {
	userSvc portssvc.UserSvcFacade
}

func newUserHandler(userSvc portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userSvc: userSvc}
}

func registerUserRoutes(rg *gin.RouterGroup, userSvc portssvc.UserSvcFacade) {
	h := newUserHandler(userSvc)

	user := rg.Group("/User")
	{
		user.GET("/all", h.ListUsers)
		user.POST("/Update", h.UpdateUser)
		user.DELETE("/SoftDelete/:userId", h.SoftDeleteUser)
		user.DELETE("/Delete/:userId", h.DeleteUser)
	}
}

// ListUsers godoc
// @Summary      List all users
// @Description  Returns every registered user. Admin only.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=[]dto.UserResponse}
// @Failure      403 {object} dto.Response
// @Router       /User/all [get]
func (h *userHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context(), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponseSlice(users), "Users retrieved successfully")
}

// UpdateUser godoc
// @Summary      Update own profile
// @Description  Updates the caller's profile. At least one field must change.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateUserRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=dto.UserResponse}
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /User/Update [post]
func (h *userHandler) UpdateUser(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userSvc.UpdateUser(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "User updated successfully")
}

// SoftDeleteUser godoc
// @Summary      Soft delete a user
// @Description  Tombstones a user. Admin only.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /User/SoftDelete/{userId} [delete]
func (h *userHandler) SoftDeleteUser(c *gin.Context) {
	callerID, ok := callerIdentity(c)
	if !ok {
		return
	}

	err := h.userSvc.SoftDeleteUser(c.Request.Context(), c.Param("userId"), callerID, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary      Permanently delete a user
// @Description  Removes a user row. Fails with 409 while the user still owns companies. Admin only.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /User/Delete/{userId} [delete]
func (h *userHandler) DeleteUser(c *gin.Context) {
	err := h.userSvc.DeleteUser(c.Request.Context(), c.Param("userId"), middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
