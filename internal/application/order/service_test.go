package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telmesh/internal/domain/payment"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/migration"
	"telmesh/internal/infrastructure/repository"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type testEnv struct {
	svc         *Service
	userID      uint
	planID      uint
	paymentRepo *repository.PaymentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)

	ctx := context.Background()

	u, err := user.NewUser("alice", "alice@example.com", "$2a$12$hash", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, u))

	p, err := plan.NewPlan("Gold", "")
	require.NoError(t, err)
	require.NoError(t, planRepo.Save(ctx, p))

	return &testEnv{
		svc:         NewService(orderRepo, paymentRepo, userRepo, planRepo, log),
		userID:      u.ID(),
		planID:      p.ID(),
		paymentRepo: paymentRepo,
	}
}

var orderDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	o, err := env.svc.Create(ctx, orderDate, 49.99, env.userID, env.planID)
	require.NoError(t, err)
	assert.NotZero(t, o.ID())

	t.Run("missing user fails", func(t *testing.T) {
		_, err := env.svc.Create(ctx, orderDate, 49.99, 999, env.planID)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing plan fails", func(t *testing.T) {
		_, err := env.svc.Create(ctx, orderDate, 49.99, env.userID, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := env.svc.Create(ctx, orderDate, 0, env.userID, env.planID)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestService_TotalAmountForUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, orderDate, 50, env.userID, env.planID)
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, orderDate, 30, env.userID, env.planID)
	require.NoError(t, err)

	total, err := env.svc.TotalAmountForUser(ctx, env.userID)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, total, 1e-9)

	t.Run("missing user fails", func(t *testing.T) {
		_, err := env.svc.TotalAmountForUser(ctx, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestService_PaymentAttachment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	o1, err := env.svc.Create(ctx, orderDate, 50, env.userID, env.planID)
	require.NoError(t, err)
	o2, err := env.svc.Create(ctx, orderDate, 30, env.userID, env.planID)
	require.NoError(t, err)

	p, err := payment.NewPayment(50, orderDate, env.userID, nil)
	require.NoError(t, err)
	require.NoError(t, env.paymentRepo.Save(ctx, p))

	require.NoError(t, env.svc.AddPayment(ctx, o1.ID(), p.ID()))

	payments, err := env.svc.Payments(ctx, o1.ID())
	require.NoError(t, err)
	require.Len(t, payments, 1)

	t.Run("attaching to another order re-parents", func(t *testing.T) {
		require.NoError(t, env.svc.AddPayment(ctx, o2.ID(), p.ID()))

		first, err := env.svc.Payments(ctx, o1.ID())
		require.NoError(t, err)
		assert.Empty(t, first)

		second, err := env.svc.Payments(ctx, o2.ID())
		require.NoError(t, err)
		assert.Len(t, second, 1)
	})

	t.Run("remove from wrong order fails", func(t *testing.T) {
		err := env.svc.RemovePayment(ctx, o1.ID(), p.ID())
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("remove detaches the payment", func(t *testing.T) {
		require.NoError(t, env.svc.RemovePayment(ctx, o2.ID(), p.ID()))

		detached, err := env.paymentRepo.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Nil(t, detached.OrderID())
	})
}

func TestService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	o, err := env.svc.Create(ctx, orderDate, 50, env.userID, env.planID)
	require.NoError(t, err)
	orderID := o.ID()

	p, err := payment.NewPayment(50, orderDate, env.userID, &orderID)
	require.NoError(t, err)
	require.NoError(t, env.paymentRepo.Save(ctx, p))

	require.NoError(t, env.svc.Delete(ctx, o.ID()))

	_, err = env.svc.Get(ctx, o.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = env.paymentRepo.FindByID(ctx, p.ID())
	assert.True(t, apperrors.IsNotFoundError(err), "order payments are deleted with the order")
}
