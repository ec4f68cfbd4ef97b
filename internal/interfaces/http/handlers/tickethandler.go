package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketApp "telmesh/internal/application/ticket"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type TicketHandler struct {
	service *ticketApp.Service
	logger  logger.Interface
}

func NewTicketHandler(service *ticketApp.Service, log logger.Interface) *TicketHandler {
	return &TicketHandler{service: service, logger: log}
}

type createTicketRequest struct {
	IssueDescription string `json:"issue_description" binding:"required,min=5,max=1000"`
	Status           string `json:"status" binding:"required,max=50"`
	CreatedDate      string `json:"created_date" binding:"required"`
	UserID           uint   `json:"user_id" binding:"required"`
}

type updateTicketRequest struct {
	IssueDescription string `json:"issue_description" binding:"required,min=5,max=1000"`
	Status           string `json:"status" binding:"required,max=50"`
}

// Create handles POST /support-tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	createdDate, err := parseDate("created_date", req.CreatedDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.IssueDescription, req.Status, createdDate, req.UserID)
	if err != nil {
		h.logger.Errorw("failed to create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewTicketResponse(created))
}

// Get handles GET /support-tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(found))
}

// List handles GET /support-tickets
func (h *TicketHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	tickets, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewTicketResponses(tickets), total, p.Page, p.PageSize)
}

// Update handles PUT /support-tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.IssueDescription, req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponse(updated))
}

// Delete handles DELETE /support-tickets/:id
func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", nil)
}

// ByStatus handles GET /support-tickets/status/:status
func (h *TicketHandler) ByStatus(c *gin.Context) {
	tickets, err := h.service.FindByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponses(tickets))
}

// CountByStatus handles GET /support-tickets/status/:status/count
func (h *TicketHandler) CountByStatus(c *gin.Context) {
	count, err := h.service.CountByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": count})
}

// ByUser handles GET /support-tickets/user/:userId
func (h *TicketHandler) ByUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets, err := h.service.FindByUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponses(tickets))
}

// ByDateRange handles GET /support-tickets/date-range?start=...&end=...
func (h *TicketHandler) ByDateRange(c *gin.Context) {
	start, end, err := utils.ParseTimeRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets, err := h.service.FindByCreatedDateBetween(c.Request.Context(), start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponses(tickets))
}

// Search handles GET /support-tickets/search?q=...
func (h *TicketHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "q query parameter is required")
		return
	}

	tickets, err := h.service.SearchByIssueDescription(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewTicketResponses(tickets))
}
