package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	feedbackApp "telmesh/internal/application/feedback"
	"telmesh/internal/interfaces/http/dto"
	"telmesh/internal/shared/logger"
	"telmesh/internal/shared/utils"
)

type FeedbackHandler struct {
	service *feedbackApp.Service
	logger  logger.Interface
}

func NewFeedbackHandler(service *feedbackApp.Service, log logger.Interface) *FeedbackHandler {
	return &FeedbackHandler{service: service, logger: log}
}

type feedbackRequest struct {
	FeedbackText  string `json:"feedback_text" binding:"required,min=5,max=500"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	SubmittedDate string `json:"submitted_date" binding:"required"`
	UserID        uint   `json:"user_id" binding:"required"`
	PlanID        uint   `json:"service_plan_id" binding:"required"`
}

// Create handles POST /feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	submittedDate, err := parseDate("submitted_date", req.SubmittedDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.FeedbackText, req.Rating, submittedDate, req.UserID, req.PlanID)
	if err != nil {
		h.logger.Errorw("failed to create feedback", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewFeedbackResponse(created))
}

// Get handles GET /feedback/:id
func (h *FeedbackHandler) Get(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponse(found))
}

// List handles GET /feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)

	feedbacks, total, err := h.service.List(c.Request.Context(), p.Offset(), p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.NewFeedbackResponses(feedbacks), total, p.Page, p.PageSize)
}

// Update handles PUT /feedback/:id
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	submittedDate, err := parseDate("submitted_date", req.SubmittedDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.FeedbackText, req.Rating, submittedDate, req.UserID, req.PlanID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponse(updated))
}

// Delete handles DELETE /feedback/:id
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "feedback deleted", nil)
}

// ByRating handles GET /feedback/rating/:rating
func (h *FeedbackHandler) ByRating(c *gin.Context) {
	rating, err := strconv.Atoi(c.Param("rating"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid rating")
		return
	}

	feedbacks, err := h.service.FindByRating(c.Request.Context(), rating)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponses(feedbacks))
}

// ByRatingRange handles GET /feedback/rating-range?min=...&max=...
func (h *FeedbackHandler) ByRatingRange(c *gin.Context) {
	min, err := strconv.Atoi(c.Query("min"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid min rating")
		return
	}
	max, err := strconv.Atoi(c.Query("max"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid max rating")
		return
	}

	feedbacks, err := h.service.FindByRatingBetween(c.Request.Context(), min, max)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponses(feedbacks))
}

// ByUser handles GET /feedback/user/:userId
func (h *FeedbackHandler) ByUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	feedbacks, err := h.service.FindByUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponses(feedbacks))
}

// ByPlan handles GET /feedback/service-plan/:planId
func (h *FeedbackHandler) ByPlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "planId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	feedbacks, err := h.service.FindByPlan(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.NewFeedbackResponses(feedbacks))
}
