package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	sharedConfig "telmesh/internal/shared/config"
	"telmesh/internal/interfaces/http/middleware"
	"telmesh/internal/shared/logger"
)

// Router holds the gin engine and the handler container.
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter builds the engine, middleware chain, and route table.
func NewRouter(db *gorm.DB, serverCfg *sharedConfig.ServerConfig, authCfg *sharedConfig.AuthConfig, log logger.Interface) *Router {
	if serverCfg.Mode == "release" || serverCfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.CORS(serverCfg.AllowedOrigins))

	r := &Router{
		engine:    engine,
		container: NewContainer(db, authCfg, log),
	}
	r.registerRoutes()
	return r
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func (r *Router) registerRoutes() {
	api := r.engine.Group("/api/v1")

	users := api.Group("/users")
	{
		h := r.container.UserHandler
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/search", h.Search)
		users.GET("/role/:role", h.ByRole)
		users.GET("/exists/username/:username", h.ExistsByUsername)
		users.GET("/exists/email/:email", h.ExistsByEmail)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.PUT("/:id/password", h.ChangePassword)
		users.DELETE("/:id", h.Delete)
		users.GET("/:id/plans", h.Plans)
		users.POST("/:id/plans/:planId", h.AssignPlan)
		users.DELETE("/:id/plans/:planId", h.RemovePlan)
	}

	regions := api.Group("/regions")
	{
		h := r.container.RegionHandler
		regions.POST("", h.Create)
		regions.GET("", h.List)
		regions.GET("/search", h.Search)
		regions.GET("/:id", h.Get)
		regions.PUT("/:id", h.Update)
		regions.DELETE("/:id", h.Delete)
		regions.GET("/:id/users", h.Users)
		regions.POST("/:id/users/:userId", h.AddUser)
		regions.DELETE("/:id/users/:userId", h.RemoveUser)
		regions.GET("/:id/network-statuses", h.NetworkStatuses)
		regions.POST("/:id/network-statuses/:statusId", h.AddNetworkStatus)
		regions.DELETE("/:id/network-statuses/:statusId", h.RemoveNetworkStatus)
	}

	plans := api.Group("/service-plans")
	{
		h := r.container.PlanHandler
		plans.POST("", h.Create)
		plans.GET("", h.List)
		plans.GET("/search", h.Search)
		plans.GET("/:id", h.Get)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
		plans.GET("/:id/users", h.Users)
		plans.GET("/:id/users/count", h.CountUsers)
		plans.POST("/:id/users/:userId", h.AddUser)
		plans.DELETE("/:id/users/:userId", h.RemoveUser)
		plans.GET("/:id/orders/count", h.CountOrders)
		plans.GET("/:id/feedback", h.Feedback)
		plans.GET("/:id/availabilities", h.Availabilities)
		plans.POST("/:id/availabilities/:availabilityId", h.AddAvailability)
		plans.DELETE("/:id/availabilities/:availabilityId", h.RemoveAvailability)
	}

	availabilities := api.Group("/availabilities")
	{
		h := r.container.AvailabilityHandler
		availabilities.POST("", h.Create)
		availabilities.GET("", h.List)
		availabilities.GET("/count", h.Count)
		availabilities.GET("/date-range", h.ByDateRange)
		availabilities.GET("/status/:status", h.ByStatus)
		availabilities.DELETE("/status/:status", h.DeleteByStatus)
		availabilities.GET("/:id", h.Get)
		availabilities.PUT("/:id", h.Update)
		availabilities.DELETE("/:id", h.Delete)
		availabilities.GET("/:id/service-plans", h.Plans)
		availabilities.POST("/:id/service-plans/:planId", h.AddPlan)
		availabilities.DELETE("/:id/service-plans/:planId", h.RemovePlan)
		availabilities.GET("/:id/network-statuses", h.NetworkStatuses)
		availabilities.POST("/:id/network-statuses/:statusId", h.AddNetworkStatus)
		availabilities.DELETE("/:id/network-statuses/:statusId", h.RemoveNetworkStatus)
	}

	networkStatuses := api.Group("/network-statuses")
	{
		h := r.container.NetworkStatusHandler
		networkStatuses.POST("", h.Create)
		networkStatuses.GET("", h.List)
		networkStatuses.PUT("/bulk-status", h.BulkUpdateStatus)
		networkStatuses.GET("/date-range", h.ByDateRange)
		networkStatuses.GET("/region/:regionId", h.ByRegion)
		networkStatuses.GET("/:id", h.Get)
		networkStatuses.PUT("/:id", h.Update)
		networkStatuses.DELETE("/:id", h.Delete)
		networkStatuses.GET("/:id/availabilities", h.Availabilities)
		networkStatuses.POST("/:id/availabilities/:availabilityId", h.AddAvailability)
		networkStatuses.DELETE("/:id/availabilities/:availabilityId", h.RemoveAvailability)
	}

	orders := api.Group("/orders")
	{
		h := r.container.OrderHandler
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/date-range", h.ByDateRange)
		orders.GET("/user/:userId", h.ByUser)
		orders.GET("/user/:userId/total", h.TotalForUser)
		orders.GET("/service-plan/:planId", h.ByPlan)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.GET("/:id/payments", h.Payments)
		orders.POST("/:id/payments/:paymentId", h.AddPayment)
		orders.DELETE("/:id/payments/:paymentId", h.RemovePayment)
	}

	payments := api.Group("/payments")
	{
		h := r.container.PaymentHandler
		payments.POST("", h.Create)
		payments.GET("", h.List)
		payments.GET("/date-range", h.ByDateRange)
		payments.GET("/amount-range", h.ByAmountRange)
		payments.GET("/user/:userId", h.ByUser)
		payments.GET("/order/:orderId", h.ByOrder)
		payments.GET("/:id", h.Get)
		payments.PUT("/:id", h.Update)
		payments.DELETE("/:id", h.Delete)
	}

	feedback := api.Group("/feedback")
	{
		h := r.container.FeedbackHandler
		feedback.POST("", h.Create)
		feedback.GET("", h.List)
		feedback.GET("/rating-range", h.ByRatingRange)
		feedback.GET("/rating/:rating", h.ByRating)
		feedback.GET("/user/:userId", h.ByUser)
		feedback.GET("/service-plan/:planId", h.ByPlan)
		feedback.GET("/:id", h.Get)
		feedback.PUT("/:id", h.Update)
		feedback.DELETE("/:id", h.Delete)
	}

	tickets := api.Group("/support-tickets")
	{
		h := r.container.TicketHandler
		tickets.POST("", h.Create)
		tickets.GET("", h.List)
		tickets.GET("/search", h.Search)
		tickets.GET("/date-range", h.ByDateRange)
		tickets.GET("/status/:status", h.ByStatus)
		tickets.GET("/status/:status/count", h.CountByStatus)
		tickets.GET("/user/:userId", h.ByUser)
		tickets.GET("/:id", h.Get)
		tickets.PUT("/:id", h.Update)
		tickets.DELETE("/:id", h.Delete)
	}
}
