// Package dto defines the JSON shapes returned by the HTTP API and the
// converters from domain entities. Password hashes never leave the
// service.
package dto

import (
	"time"

	"telmesh/internal/domain/availability"
	"telmesh/internal/domain/feedback"
	"telmesh/internal/domain/network"
	"telmesh/internal/domain/order"
	"telmesh/internal/domain/payment"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/region"
	"telmesh/internal/domain/ticket"
	"telmesh/internal/domain/user"
	"telmesh/internal/shared/constants"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RegionID  *uint     `json:"region_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		RegionID:  u.RegionID(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func NewUserResponses(users []*user.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, NewUserResponse(u))
	}
	return result
}

type RegionResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewRegionResponse(r *region.Region) RegionResponse {
	return RegionResponse{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func NewRegionResponses(regions []*region.Region) []RegionResponse {
	result := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		result = append(result, NewRegionResponse(r))
	}
	return result
}

type PlanResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPlanResponse(p *plan.Plan) PlanResponse {
	return PlanResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewPlanResponses(plans []*plan.Plan) []PlanResponse {
	result := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, NewPlanResponse(p))
	}
	return result
}

type AvailabilityResponse struct {
	ID                 uint      `json:"id"`
	AvailabilityStatus string    `json:"availability_status"`
	AvailabilityDate   string    `json:"availability_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewAvailabilityResponse(a *availability.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:                 a.ID(),
		AvailabilityStatus: a.Status(),
		AvailabilityDate:   a.AvailabilityDate().Format(constants.TimeLayout),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func NewAvailabilityResponses(availabilities []*availability.Availability) []AvailabilityResponse {
	result := make([]AvailabilityResponse, 0, len(availabilities))
	for _, a := range availabilities {
		result = append(result, NewAvailabilityResponse(a))
	}
	return result
}

type NetworkStatusResponse struct {
	ID         uint      `json:"id"`
	Status     string    `json:"status"`
	UpdateDate string    `json:"update_date"`
	RegionID   *uint     `json:"region_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewNetworkStatusResponse(s *network.Status) NetworkStatusResponse {
	return NetworkStatusResponse{
		ID:         s.ID(),
		Status:     s.StatusValue(),
		UpdateDate: s.UpdateDate().Format(constants.TimeLayout),
		RegionID:   s.RegionID(),
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func NewNetworkStatusResponses(statuses []*network.Status) []NetworkStatusResponse {
	result := make([]NetworkStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, NewNetworkStatusResponse(s))
	}
	return result
}

type OrderResponse struct {
	ID          uint      `json:"id"`
	OrderDate   string    `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
	UserID      uint      `json:"user_id"`
	PlanID      uint      `json:"service_plan_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID(),
		OrderDate:   o.OrderDate().Format(constants.TimeLayout),
		TotalAmount: o.TotalAmount(),
		UserID:      o.UserID(),
		PlanID:      o.PlanID(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func NewOrderResponses(orders []*order.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, NewOrderResponse(o))
	}
	return result
}

type PaymentResponse struct {
	ID          uint      `json:"id"`
	Amount      float64   `json:"amount"`
	PaymentDate string    `json:"payment_date"`
	UserID      uint      `json:"user_id"`
	OrderID     *uint     `json:"order_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID(),
		Amount:      p.Amount(),
		PaymentDate: p.PaymentDate().Format(constants.TimeLayout),
		UserID:      p.UserID(),
		OrderID:     p.OrderID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewPaymentResponses(payments []*payment.Payment) []PaymentResponse {
	result := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, NewPaymentResponse(p))
	}
	return result
}

type FeedbackResponse struct {
	ID            uint      `json:"id"`
	FeedbackText  string    `json:"feedback_text"`
	Rating        int       `json:"rating"`
	SubmittedDate string    `json:"submitted_date"`
	UserID        uint      `json:"user_id"`
	PlanID        uint      `json:"service_plan_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:            f.ID(),
		FeedbackText:  f.Text(),
		Rating:        f.Rating(),
		SubmittedDate: f.SubmittedDate().Format(constants.TimeLayout),
		UserID:        f.UserID(),
		PlanID:        f.PlanID(),
		CreatedAt:     f.CreatedAt(),
		UpdatedAt:     f.UpdatedAt(),
	}
}

func NewFeedbackResponses(feedbacks []*feedback.Feedback) []FeedbackResponse {
	result := make([]FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, NewFeedbackResponse(f))
	}
	return result
}

type TicketResponse struct {
	ID               uint      `json:"id"`
	IssueDescription string    `json:"issue_description"`
	Status           string    `json:"status"`
	CreatedDate      string    `json:"created_date"`
	UserID           uint      `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:               t.ID(),
		IssueDescription: t.IssueDescription(),
		Status:           t.Status(),
		CreatedDate:      t.CreatedDate().Format(constants.TimeLayout),
		UserID:           t.UserID(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

func NewTicketResponses(tickets []*ticket.Ticket) []TicketResponse {
	result := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, NewTicketResponse(t))
	}
	return result
}
