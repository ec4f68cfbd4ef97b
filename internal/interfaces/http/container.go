// Package http wires the application together behind a gin engine:
// repositories over the database handle, services over the
// repositories, handlers over the services.
package http

import (
	"gorm.io/gorm"

	availabilityApp "telmesh/internal/application/availability"
	feedbackApp "telmesh/internal/application/feedback"
	networkApp "telmesh/internal/application/network"
	orderApp "telmesh/internal/application/order"
	paymentApp "telmesh/internal/application/payment"
	planApp "telmesh/internal/application/plan"
	regionApp "telmesh/internal/application/region"
	ticketApp "telmesh/internal/application/ticket"
	userApp "telmesh/internal/application/user"
	"telmesh/internal/infrastructure/repository"
	"telmesh/internal/interfaces/http/handlers"
	sharedConfig "telmesh/internal/shared/config"
	"telmesh/internal/shared/logger"
)

// Container holds the fully wired handler set.
type Container struct {
	UserHandler          *handlers.UserHandler
	RegionHandler        *handlers.RegionHandler
	PlanHandler          *handlers.PlanHandler
	AvailabilityHandler  *handlers.AvailabilityHandler
	NetworkStatusHandler *handlers.NetworkStatusHandler
	OrderHandler         *handlers.OrderHandler
	PaymentHandler       *handlers.PaymentHandler
	FeedbackHandler      *handlers.FeedbackHandler
	TicketHandler        *handlers.TicketHandler
}

// NewContainer builds every repository, service, and handler over the
// given database handle.
func NewContainer(db *gorm.DB, authCfg *sharedConfig.AuthConfig, log logger.Interface) *Container {
	userRepo := repository.NewUserRepository(db, log.Named("repo.user"))
	regionRepo := repository.NewRegionRepository(db, log.Named("repo.region"))
	planRepo := repository.NewPlanRepository(db, log.Named("repo.plan"))
	availabilityRepo := repository.NewAvailabilityRepository(db)
	networkRepo := repository.NewNetworkStatusRepository(db, log.Named("repo.network"))
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	userService := userApp.NewService(userRepo, planRepo, authCfg.BcryptCost, log.Named("service.user"))
	regionService := regionApp.NewService(regionRepo, userRepo, networkRepo, log.Named("service.region"))
	planService := planApp.NewService(planRepo, userRepo, availabilityRepo, feedbackRepo, log.Named("service.plan"))
	availabilityService := availabilityApp.NewService(availabilityRepo, planRepo, networkRepo, log.Named("service.availability"))
	networkService := networkApp.NewService(networkRepo, regionRepo, availabilityRepo, log.Named("service.network"))
	orderService := orderApp.NewService(orderRepo, paymentRepo, userRepo, planRepo, log.Named("service.order"))
	paymentService := paymentApp.NewService(paymentRepo, userRepo, orderRepo, log.Named("service.payment"))
	feedbackService := feedbackApp.NewService(feedbackRepo, userRepo, planRepo, log.Named("service.feedback"))
	ticketService := ticketApp.NewService(ticketRepo, userRepo, log.Named("service.ticket"))

	return &Container{
		UserHandler:          handlers.NewUserHandler(userService, log.Named("handler.user")),
		RegionHandler:        handlers.NewRegionHandler(regionService, log.Named("handler.region")),
		PlanHandler:          handlers.NewPlanHandler(planService, log.Named("handler.plan")),
		AvailabilityHandler:  handlers.NewAvailabilityHandler(availabilityService, log.Named("handler.availability")),
		NetworkStatusHandler: handlers.NewNetworkStatusHandler(networkService, log.Named("handler.network")),
		OrderHandler:         handlers.NewOrderHandler(orderService, log.Named("handler.order")),
		PaymentHandler:       handlers.NewPaymentHandler(paymentService, log.Named("handler.payment")),
		FeedbackHandler:      handlers.NewFeedbackHandler(feedbackService, log.Named("handler.feedback")),
		TicketHandler:        handlers.NewTicketHandler(ticketService, log.Named("handler.ticket")),
	}
}
