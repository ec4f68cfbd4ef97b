package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	availabilityApp "telmesh/internal/application/availability"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type AvailabilityHandler struct {
	service *availabilityApp.Service
	logger  logger.Interface
}

func NewAvailabilityHandler(service *availabilityApp.Service, log logger.Interface) *AvailabilityHandler {
	return &AvailabilityHandler{service: service, logger: log}
}

type availabilityRequest struct {
	AvailabilityStatus string `json:"availability_status" binding:"required,min=3,max=100"`
	AvailabilityDate   string `json:"availability_date" binding:"required"`
}

// Create handles POST /availabilities
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	date, err := parseDate("availability_date", req.AvailabilityDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.AvailabilityStatus, date)
	if err != nil {
		h.logger.Errorw("failed to create availability", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewAvailabilityResponse(created))
}

// Get handles GET /availabilities/:id
func (h *AvailabilityHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponse(found))
}

// List handles GET /availabilities; sorted=true orders by date.
func (h *AvailabilityHandler) List(c *gin.Context) {
	if c.Query("sorted") == "true" {
		availabilities, err := h.service.ListSortedByDate(c.Request.Context())
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponses(availabilities))
		return
	}

	p := utils.ParsePagination(c)

	availabilities, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewAvailabilityResponses(availabilities), total, p.Page, p.PageSize)
}

// Count handles GET /availabilities/count
func (h *AvailabilityHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

// Update handles PUT /availabilities/:id
func (h *AvailabilityHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	date, err := parseDate("availability_date", req.AvailabilityDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.AvailabilityStatus, date)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponse(updated))
}

// Delete handles DELETE /availabilities/:id
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "availability deleted", nil)
}

// DeleteByStatus handles DELETE /availabilities/status/:status
func (h *AvailabilityHandler) DeleteByStatus(c *gin.Context) {
	status := c.Param("status")

	deleted, err := h.service.DeleteByStatus(c.Request.Context(), status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "availabilities deleted", gin.H{"deleted": deleted})
}

// ByStatus handles GET /availabilities/status/:status
func (h *AvailabilityHandler) ByStatus(c *gin.Context) {
	availabilities, err := h.service.FindByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponses(availabilities))
}

// ByDateRange handles GET /availabilities/date-range?start=...&end=...
func (h *AvailabilityHandler) ByDateRange(c *gin.Context) {
	start, end, err := utils.ParseTimeRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	availabilities, err := h.service.FindByDateBetween(c.Request.Context(), start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponses(availabilities))
}

// AddPlan handles POST /availabilities/:id/service-plans/:planId
func (h *AvailabilityHandler) AddPlan(c *gin.Context) {
	availabilityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddPlan(c.Request.Context(), availabilityID, planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan linked to availability", nil)
}

// RemovePlan handles DELETE /availabilities/:id/service-plans/:planId
func (h *AvailabilityHandler) RemovePlan(c *gin.Context) {
	availabilityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	planID, err := utils.ParseIDParam(c, "planId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemovePlan(c.Request.Context(), availabilityID, planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan unlinked from availability", nil)
}

// Plans handles GET /availabilities/:id/service-plans
func (h *AvailabilityHandler) Plans(c *gin.Context) {
	availabilityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	plans, err := h.service.Plans(c.Request.Context(), availabilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPlanResponses(plans))
}

// AddNetworkStatus handles POST /availabilities/:id/network-statuses/:statusId
func (h *AvailabilityHandler) AddNetworkStatus(c *gin.Context) {
	availabilityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	statusID, err := utils.ParseIDParam(c, "statusId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddNetworkStatus(c.Request.Context(), availabilityID, statusID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "network status linked to availability", nil)
}

// RemoveNetworkStatus handles DELETE /availabilities/:id/network-statuses/:statusId
func (h *AvailabilityHandler) RemoveNetworkStatus(c *gin.Context) {
	availabilityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	statusID, err := utils.ParseIDParam(c, "statusId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveNetworkStatus(c.Request.Context(), availabilityID, statusID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "network status unlinked from availability", nil)
}

// NetworkStatuses handles GET /availabilities/:id/network-statuses
func (h *AvailabilityHandler) NetworkStatuses(c *gin.Context) {
	availabilityID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	statuses, err := h.service.NetworkStatuses(c.Request.Context(), availabilityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponses(statuses))
}
