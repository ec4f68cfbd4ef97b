package migration

import (
	"telmesh/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persisted model, join tables included.
// Order matters for foreign key creation on engines that enforce it.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RegionModel{},
		&models.UserModel{},
		&models.ServicePlanModel{},
		&models.ServiceAvailabilityModel{},
		&models.NetworkStatusModel{},
		&models.OrderModel{},
		&models.PaymentModel{},
		&models.FeedbackModel{},
		&models.SupportTicketModel{},
		&models.UserPlanModel{},
		&models.PlanAvailabilityModel{},
		&models.NetworkAvailabilityModel{},
	}
}
