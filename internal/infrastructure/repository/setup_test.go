package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telmesh/internal/domain/availability"
	"telmesh/internal/domain/network"
	"telmesh/internal/domain/order"
	"telmesh/internal/domain/payment"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/region"
	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/persistence/models"
	"telmesh/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, repo *UserRepository, username, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, email, "$2a$12$testhash", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

func createTestRegion(t *testing.T, repo *RegionRepository, name string) *region.Region {
	t.Helper()
	r, err := region.NewRegion(name, "test region")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), r))
	return r
}

func createTestPlan(t *testing.T, repo *PlanRepository, name string) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(name, "test plan")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func createTestAvailability(t *testing.T, repo *AvailabilityRepository, status string, date time.Time) *availability.Availability {
	t.Helper()
	a, err := availability.NewAvailability(status, date)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), a))
	return a
}

func createTestNetworkStatus(t *testing.T, repo *NetworkStatusRepository, status string, date time.Time, regionID uint) *network.Status {
	t.Helper()
	s, err := network.NewStatus(status, date, regionID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), s))
	return s
}

func createTestOrder(t *testing.T, repo *OrderRepository, amount float64, userID, planID uint) *order.Order {
	t.Helper()
	o, err := order.NewOrder(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), amount, userID, planID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), o))
	return o
}

func createTestPayment(t *testing.T, repo *PaymentRepository, amount float64, userID uint, orderID *uint) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(amount, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), userID, orderID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), p))
	return p
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
