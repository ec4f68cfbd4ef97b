package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	paymentApp "telmesh/internal/application/payment"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type PaymentHandler struct {
	service *paymentApp.Service
	logger  logger.Interface
}

func NewPaymentHandler(service *paymentApp.Service, log logger.Interface) *PaymentHandler {
	return &PaymentHandler{service: service, logger: log}
}

type paymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	UserID      uint    `json:"user_id" binding:"required"`
	OrderID     *uint   `json:"order_id"`
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	paymentDate, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Amount, paymentDate, req.UserID, req.OrderID)
	if err != nil {
		h.logger.Errorw("failed to create payment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewPaymentResponse(created))
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponse(found))
}

// List handles GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	payments, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewPaymentResponses(payments), total, p.Page, p.PageSize)
}

// Update handles PUT /payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	paymentDate, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Amount, paymentDate, req.UserID, req.OrderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponse(updated))
}

// Delete handles DELETE /payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment deleted", nil)
}

// ByUser handles GET /payments/user/:userId
func (h *PaymentHandler) ByUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payments, err := h.service.FindByUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponses(payments))
}

// ByOrder handles GET /payments/order/:orderId
func (h *PaymentHandler) ByOrder(c *gin.Context) {
	orderID, err := utils.ParseIDParam(c, "orderId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payments, err := h.service.FindByOrder(c.Request.Context(), orderID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponses(payments))
}

// ByDateRange handles GET /payments/date-range?start=...&end=...
func (h *PaymentHandler) ByDateRange(c *gin.Context) {
	start, end, err := utils.ParseTimeRange(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payments, err := h.service.FindByPaymentDateBetween(c.Request.Context(), start, end)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponses(payments))
}

// ByAmountRange handles GET /payments/amount-range?min=...&max=...
func (h *PaymentHandler) ByAmountRange(c *gin.Context) {
	min, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid min amount")
		return
	}
	max, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid max amount")
		return
	}

	payments, err := h.service.FindByAmountBetween(c.Request.Context(), min, max)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewPaymentResponses(payments))
}
