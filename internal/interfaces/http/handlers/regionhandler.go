package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	regionApp "telmesh/internal/application/region"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type RegionHandler struct {
	service *regionApp.Service
	logger  logger.Interface
}

func NewRegionHandler(service *regionApp.Service, log logger.Interface) *RegionHandler {
	return &RegionHandler{service: service, logger: log}
}

type regionRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// Create handles POST /regions
func (h *RegionHandler) Create(c *gin.Context) {
	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.logger.Errorw("failed to create region", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewRegionResponse(created))
}

// Get handles GET /regions/:id
func (h *RegionHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewRegionResponse(found))
}

// List handles GET /regions
func (h *RegionHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	regions, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewRegionResponses(regions), total, p.Page, p.PageSize)
}

// Update handles PUT /regions/:id
func (h *RegionHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewRegionResponse(updated))
}

// Delete handles DELETE /regions/:id
func (h *RegionHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "region deleted", nil)
}

// Search handles GET /regions/search?name=...&description=...
func (h *RegionHandler) Search(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		regions, err := h.service.SearchByName(c.Request.Context(), name)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", dto.NewRegionResponses(regions))
		return
	}

	if description := c.Query("description"); description != "" {
		regions, err := h.service.SearchByDescription(c.Request.Context(), description)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", dto.NewRegionResponses(regions))
		return
	}

	utils.ErrorResponse(c, http.StatusBadRequest, "name or description query parameter is required")
}

// AddUser handles POST /regions/:id/users/:userId
func (h *RegionHandler) AddUser(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddUser(c.Request.Context(), regionID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user added to region", nil)
}

// RemoveUser handles DELETE /regions/:id/users/:userId
func (h *RegionHandler) RemoveUser(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveUser(c.Request.Context(), regionID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user removed from region", nil)
}

// Users handles GET /regions/:id/users
func (h *RegionHandler) Users(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users, err := h.service.Users(c.Request.Context(), regionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewUserResponses(users))
}

// AddNetworkStatus handles POST /regions/:id/network-statuses/:statusId
func (h *RegionHandler) AddNetworkStatus(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	statusID, err := utils.ParseIDParam(c, "statusId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddNetworkStatus(c.Request.Context(), regionID, statusID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "network status added to region", nil)
}

// RemoveNetworkStatus handles DELETE /regions/:id/network-statuses/:statusId
func (h *RegionHandler) RemoveNetworkStatus(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	statusID, err := utils.ParseIDParam(c, "statusId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveNetworkStatus(c.Request.Context(), regionID, statusID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "network status removed from region", nil)
}

// NetworkStatuses handles GET /regions/:id/network-statuses
func (h *RegionHandler) NetworkStatuses(c *gin.Context) {
	regionID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	statuses, err := h.service.NetworkStatuses(c.Request.Context(), regionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewNetworkStatusResponses(statuses))
}
