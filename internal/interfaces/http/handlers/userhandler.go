// Package handlers contains the gin HTTP handlers. Each handler wraps
// one application service and translates between JSON and domain types.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userApp "telmesh/internal/application/user"
	"telmesh/internal/domain/user"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type UserHandler struct {
	service *userApp.Service
	logger  logger.Interface
}

func NewUserHandler(service *userApp.Service, log logger.Interface) *UserHandler {
	return &UserHandler{service: service, logger: log}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=USER ADMIN"`
}

type updateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Role     string `json:"role" binding:"required,oneof=USER ADMIN"`
}

type changePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		h.logger.Errorw("failed to create user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewUserResponse(created))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponse(found))
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	users, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewUserResponses(users), total, p.Page, p.PageSize)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), id, req.Username, req.Email, user.Role(req.Role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponse(updated))
}

// ChangePassword handles PUT /users/:id/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), id, req.Password); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deleted", nil)
}

// Search handles GET /users/search?username=...
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("username")
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "username query parameter is required")
		return
	}

	users, err := h.service.SearchByUsername(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponses(users))
}

// ByRole handles GET /users/role/:role
func (h *UserHandler) ByRole(c *gin.Context) {
	users, err := h.service.FindByRole(c.Request.Context(), user.Role(c.Param("role")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponses(users))
}

// ExistsByUsername handles GET /users/exists/username/:username
func (h *UserHandler) ExistsByUsername(c *gin.Context) {
	exists, err := h.service.ExistsByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"exists": exists})
}

// ExistsByEmail handles GET /users/exists/email/:email
func (h *UserHandler) ExistsByEmail(c *gin.Context) {
	exists, err := h.service.ExistsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"exists": exists})
}

// AssignPlan handles POST /users/:id/plans/:planId
func (h *UserHandler) AssignPlan(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AssignPlan(c.Request.Context(), userID, planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan assigned", nil)
}

// RemovePlan handles DELETE /users/:id/plans/:planId
func (h *UserHandler) RemovePlan(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemovePlan(c.Request.Context(), userID, planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan removed", nil)
}

// Plans handles GET /users/:id/plans
func (h *UserHandler) Plans(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	plans, err := h.service.PlansForUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPlanResponses(plans))
}
