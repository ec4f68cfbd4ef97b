package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telmesh/internal/domain/order"
	"telmesh/internal/domain/plan"
	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/migration"
	"telmesh/internal/infrastructure/repository"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type testEnv struct {
	svc     *Service
	userID  uint
	orderID uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	paymentRepo := repository.NewPaymentRepository(db)
	userRepo := repository.NewUserRepository(db, log)
	orderRepo := repository.NewOrderRepository(db)
	planRepo := repository.NewPlanRepository(db, log)

	ctx := context.Background()

	u, err := user.NewUser("alice", "alice@example.com", "$2a$12$hash", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, u))

	p, err := plan.NewPlan("Gold", "")
	require.NoError(t, err)
	require.NoError(t, planRepo.Save(ctx, p))

	o, err := order.NewOrder(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 49.99, u.ID(), p.ID())
	require.NoError(t, err)
	require.NoError(t, orderRepo.Save(ctx, o))

	return &testEnv{
		svc:     NewService(paymentRepo, userRepo, orderRepo, log),
		userID:  u.ID(),
		orderID: o.ID(),
	}
}

var paymentDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("standalone payment", func(t *testing.T) {
		p, err := env.svc.Create(ctx, 49.99, paymentDate, env.userID, nil)
		require.NoError(t, err)
		assert.NotZero(t, p.ID())
		assert.Nil(t, p.OrderID())
	})

	t.Run("payment attached to order", func(t *testing.T) {
		p, err := env.svc.Create(ctx, 49.99, paymentDate, env.userID, &env.orderID)
		require.NoError(t, err)
		require.NotNil(t, p.OrderID())
		assert.Equal(t, env.orderID, *p.OrderID())
	})

	t.Run("missing user fails", func(t *testing.T) {
		_, err := env.svc.Create(ctx, 49.99, paymentDate, 999, nil)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing order fails", func(t *testing.T) {
		missing := uint(999)
		_, err := env.svc.Create(ctx, 49.99, paymentDate, env.userID, &missing)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := env.svc.Create(ctx, 0, paymentDate, env.userID, nil)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestService_FindByAmountBetween(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, 10, paymentDate, env.userID, nil)
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, 60, paymentDate, env.userID, nil)
	require.NoError(t, err)

	found, err := env.svc.FindByAmountBetween(ctx, 5, 20)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := env.svc.FindByAmountBetween(ctx, 20, 5)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.Create(ctx, 49.99, paymentDate, env.userID, nil)
	require.NoError(t, err)

	updated, err := env.svc.Update(ctx, p.ID(), 59.99, paymentDate, env.userID, &env.orderID)
	require.NoError(t, err)
	assert.Equal(t, 59.99, updated.Amount())
	require.NotNil(t, updated.OrderID())
	assert.Equal(t, env.orderID, *updated.OrderID())
}
