package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	networkApp "telmesh/internal/application/network"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type NetworkStatusHandler struct {
	service *networkApp.Service
	logger  logger.Interface
}

func NewNetworkStatusHandler(service *networkApp.Service, log logger.Interface) *NetworkStatusHandler {
	return &NetworkStatusHandler{service: service, logger: log}
}

type createNetworkStatusRequest struct {
	Status     string `json:"status" binding:"required,min=3,max=100"`
	UpdateDate string `json:"update_date" binding:"required"`
	RegionID   uint   `json:"region_id" binding:"required"`
}

type updateNetworkStatusRequest struct {
	Status     string `json:"status" binding:"required,min=3,max=100"`
	UpdateDate string `json:"update_date" binding:"required"`
}

type bulkUpdateStatusRequest struct {
	IDs    []uint `json:"ids" binding:"required,min=1"`
	Status string `json:"status" binding:"required,min=3,max=100"`
}

// Create handles POST /network-statuses
func (h *NetworkStatusHandler) Create(c *gin.Context) {
	var req createNetworkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updateDate, err := parseDate("update_date", req.UpdateDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Status, updateDate, req.RegionID)
	if err != nil {
		h.logger.Errorw("failed to create network status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewNetworkStatusResponse(created))
}

// Get handles GET /network-statuses/:id
func (h *NetworkStatusHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponse(found))
}

// List handles GET /network-statuses
func (h *NetworkStatusHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	statuses, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewNetworkStatusResponses(statuses), total, p.Page, p.PageSize)
}

// Update handles PUT /network-statuses/:id
func (h *NetworkStatusHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateNetworkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updateDate, err := parseDate("update_date", req.UpdateDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Status, updateDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponse(updated))
}

// Delete handles DELETE /network-statuses/:id
func (h *NetworkStatusHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "network status deleted", nil)
}

// BulkUpdateStatus handles PUT /network-statuses/bulk-status
func (h *NetworkStatusHandler) BulkUpdateStatus(c *gin.Context) {
	var req bulkUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	statuses, err := h.service.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponses(statuses))
}

// ByRegion handles GET /network-statuses/region/:regionId
func (h *NetworkStatusHandler) ByRegion(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "regionId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	statuses, err := h.service.FindByRegion(c.Request.Context(), regionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponses(statuses))
}

// ByDateRange handles GET /network-statuses/date-range?start=...&end=...
func (h *NetworkStatusHandler) ByDateRange(c *gin.Context) {
	start, end, err := utils.ParseTimeRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	statuses, err := h.service.FindByUpdateDateBetween(c.Request.Context(), start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponses(statuses))
}

// AddAvailability handles POST /network-statuses/:id/availabilities/:availabilityId
func (h *NetworkStatusHandler) AddAvailability(c *gin.Context) {
	statusID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	availabilityID, err := utils.ParseIDParam(c, "availabilityId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddAvailability(c.Request.Context(), statusID, availabilityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "availability linked to network status", nil)
}

// RemoveAvailability handles DELETE /network-statuses/:id/availabilities/:availabilityId
func (h *NetworkStatusHandler) RemoveAvailability(c *gin.Context) {
	statusID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	availabilityID, err := utils.ParseIDParam(c, "availabilityId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveAvailability(c.Request.Context(), statusID, availabilityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "availability unlinked from network status", nil)
}

// Availabilities handles GET /network-statuses/:id/availabilities
func (h *NetworkStatusHandler) Availabilities(c *gin.Context) {
	statusID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	availabilities, err := h.service.Availabilities(c.Request.Context(), statusID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewAvailabilityResponses(availabilities))
}
