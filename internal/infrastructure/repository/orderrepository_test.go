package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

func TestOrderRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	planRepo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	p := createTestPlan(t, planRepo, "Gold")

	o := createTestOrder(t, repo, 49.99, u.ID(), p.ID())
	assert.NotZero(t, o.ID())

	found, err := repo.FindByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, 49.99, found.TotalAmount())
	assert.Equal(t, u.ID(), found.UserID())
	assert.Equal(t, p.ID(), found.PlanID())
}

func TestOrderRepository_FindByUserAndPlan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	planRepo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	u1 := createTestUser(t, userRepo, "alice", "alice@example.com")
	u2 := createTestUser(t, userRepo, "bob", "bob@example.com")
	p := createTestPlan(t, planRepo, "Gold")

	createTestOrder(t, repo, 50, u1.ID(), p.ID())
	createTestOrder(t, repo, 30, u1.ID(), p.ID())
	createTestOrder(t, repo, 20, u2.ID(), p.ID())

	byUser, err := repo.FindByUserID(ctx, u1.ID())
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byPlan, err := repo.FindByPlanID(ctx, p.ID())
	require.NoError(t, err)
	assert.Len(t, byPlan, 3)
}

func TestOrderRepository_FindByOrderDateBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	planRepo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	p := createTestPlan(t, planRepo, "Gold")
	createTestOrder(t, repo, 50, u.ID(), p.ID()) // 2025-06-01

	found, err := repo.FindByOrderDateBetween(ctx,
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, found, 1)

	outside, err := repo.FindByOrderDateBetween(ctx,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, outside)
}

func TestOrderRepository_DeleteByID_CascadesPayments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	planRepo := NewPlanRepository(db, testLogger())
	paymentRepo := NewPaymentRepository(db)
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	p := createTestPlan(t, planRepo, "Gold")
	o := createTestOrder(t, repo, 49.99, u.ID(), p.ID())
	orderID := o.ID()
	createTestPayment(t, paymentRepo, 49.99, u.ID(), &orderID)
	// a standalone payment is untouched
	standalone := createTestPayment(t, paymentRepo, 10, u.ID(), nil)

	require.NoError(t, repo.DeleteByID(ctx, o.ID()))

	_, err := repo.FindByID(ctx, o.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	var payments int64
	require.NoError(t, db.Model(&models.PaymentModel{}).Count(&payments).Error)
	assert.Equal(t, int64(1), payments)

	_, err = paymentRepo.FindByID(ctx, standalone.ID())
	assert.NoError(t, err)
}
