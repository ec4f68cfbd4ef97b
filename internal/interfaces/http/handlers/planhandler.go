package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	planApp "telmesh/internal/application/plan"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type PlanHandler struct {
	service *planApp.Service
	logger  logger.Interface
}

func NewPlanHandler(service *planApp.Service, log logger.Interface) *PlanHandler {
	return &PlanHandler{service: service, logger: log}
}

type planRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// Create handles POST /service-plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.logger.Errorw("failed to create service plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewPlanResponse(created))
}

// Get handles GET /service-plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPlanResponse(found))
}

// List handles GET /service-plans
func (h *PlanHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	plans, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewPlanResponses(plans), total, p.Page, p.PageSize)
}

// Update handles PUT /service-plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPlanResponse(updated))
}

// Delete handles DELETE /service-plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service plan deleted", nil)
}

// Search handles GET /service-plans/search?q=...
func (h *PlanHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "q query parameter is required")
		return
	}

	plans, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPlanResponses(plans))
}

// AddUser handles POST /service-plans/:id/users/:userId
func (h *PlanHandler) AddUser(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddUser(c.Request.Context(), planID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user subscribed to plan", nil)
}

// RemoveUser handles DELETE /service-plans/:id/users/:userId
func (h *PlanHandler) RemoveUser(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveUser(c.Request.Context(), planID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user unsubscribed from plan", nil)
}

// Users handles GET /service-plans/:id/users
func (h *PlanHandler) Users(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users, err := h.service.Users(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponses(users))
}

// CountUsers handles GET /service-plans/:id/users/count
func (h *PlanHandler) CountUsers(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	count, err := h.service.CountUsers(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

// CountOrders handles GET /service-plans/:id/orders/count
func (h *PlanHandler) CountOrders(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	count, err := h.service.CountOrders(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

// Feedback handles GET /service-plans/:id/feedback
func (h *PlanHandler) Feedback(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	feedbacks, err := h.service.Feedback(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponses(feedbacks))
}

// AddAvailability handles POST /service-plans/:id/availabilities/:availabilityId
func (h *PlanHandler) AddAvailability(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	availabilityID, err := utils.ParseIDParam(c, "availabilityId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddAvailability(c.Request.Context(), planID, availabilityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "availability linked to plan", nil)
}

// RemoveAvailability handles DELETE /service-plans/:id/availabilities/:availabilityId
func (h *PlanHandler) RemoveAvailability(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	availabilityID, err := utils.ParseIDParam(c, "availabilityId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveAvailability(c.Request.Context(), planID, availabilityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "availability unlinked from plan", nil)
}

// Availabilities handles GET /service-plans/:id/availabilities
func (h *PlanHandler) Availabilities(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	availabilities, err := h.service.Availabilities(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponses(availabilities))
}
