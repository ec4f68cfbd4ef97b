package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderApp "telmesh/internal/application/order"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type OrderHandler struct {
	service *orderApp.Service
	logger  logger.Interface
}

func NewOrderHandler(service *orderApp.Service, log logger.Interface) *OrderHandler {
	return &OrderHandler{service: service, logger: log}
}

type orderRequest struct {
	OrderDate   string  `json:"order_date" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
	UserID      uint    `json:"user_id" binding:"required"`
	PlanID      uint    `json:"service_plan_id" binding:"required"`
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	orderDate, err := parseDate("order_date", req.OrderDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), orderDate, req.TotalAmount, req.UserID, req.PlanID)
	if err != nil {
		h.logger.Errorw("failed to create order", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewOrderResponse(created))
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewOrderResponse(found))
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	orders, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewOrderResponses(orders), total, p.Page, p.PageSize)
}

// Update handles PUT /orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	orderDate, err := parseDate("order_date", req.OrderDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, orderDate, req.TotalAmount, req.UserID, req.PlanID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewOrderResponse(updated))
}

// Delete handles DELETE /orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "order deleted", nil)
}

// ByUser handles GET /orders/user/:userId
func (h *OrderHandler) ByUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orders, err := h.service.FindByUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewOrderResponses(orders))
}

// ByPlan handles GET /orders/service-plan/:planId
func (h *OrderHandler) ByPlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "planId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orders, err := h.service.FindByPlan(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewOrderResponses(orders))
}

// ByDateRange handles GET /orders/date-range?start=...&end=...
func (h *OrderHandler) ByDateRange(c *gin.Context) {
	start, end, err := utils.ParseTimeRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orders, err := h.service.FindByOrderDateBetween(c.Request.Context(), start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewOrderResponses(orders))
}

// TotalForUser handles GET /orders/user/:userId/total
func (h *OrderHandler) TotalForUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	total, err := h.service.TotalAmountForUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"total": total})
}

// AddPayment handles POST /orders/:id/payments/:paymentId
func (h *OrderHandler) AddPayment(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	paymentID, err := utils.ParseIDParam(c, "paymentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddPayment(c.Request.Context(), orderID, paymentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment attached to order", nil)
}

// RemovePayment handles DELETE /orders/:id/payments/:paymentId
func (h *OrderHandler) RemovePayment(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	paymentID, err := utils.ParseIDParam(c, "paymentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemovePayment(c.Request.Context(), orderID, paymentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment detached from order", nil)
}

// Payments handles GET /orders/:id/payments
func (h *OrderHandler) Payments(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payments, err := h.service.Payments(c.Request.Context(), orderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponses(payments))
}
