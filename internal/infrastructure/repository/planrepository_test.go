package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telmesh/internal/domain/plan"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

func TestPlanRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	p := createTestPlan(t, repo, "Gold")
	assert.NotZero(t, p.ID())

	t.Run("duplicate name returns conflict", func(t *testing.T) {
		dup, err := plan.NewPlan("Gold", "another gold")
		require.NoError(t, err)
		err = repo.Save(ctx, dup)
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestPlanRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	p1, err := plan.NewPlan("Gold Fiber", "1 Gbps symmetric")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p1))
	p2, err := plan.NewPlan("Silver", "budget dsl tier")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p2))

	t.Run("matches name", func(t *testing.T) {
		found, err := repo.Search(ctx, "gold")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Gold Fiber", found[0].Name())
	})

	t.Run("matches description", func(t *testing.T) {
		found, err := repo.Search(ctx, "DSL")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Silver", found[0].Name())
	})
}

func TestPlanRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	userRepo := NewUserRepository(db, testLogger())
	orderRepo := NewOrderRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Gold")
	u1 := createTestUser(t, userRepo, "alice", "alice@example.com")
	u2 := createTestUser(t, userRepo, "bob", "bob@example.com")

	require.NoError(t, userRepo.AddPlanMembership(ctx, u1.ID(), p.ID()))
	require.NoError(t, userRepo.AddPlanMembership(ctx, u2.ID(), p.ID()))
	createTestOrder(t, orderRepo, 49.99, u1.ID(), p.ID())

	users, err := repo.CountUsers(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	orders, err := repo.CountOrders(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), orders)
}

func TestPlanRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	userRepo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	gold := createTestPlan(t, repo, "Gold")
	createTestPlan(t, repo, "Silver")
	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	require.NoError(t, userRepo.AddPlanMembership(ctx, u.ID(), gold.ID()))

	plans, err := repo.FindByUserID(ctx, u.ID())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Gold", plans[0].Name())
}

func TestPlanRepository_AvailabilityLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	availRepo := NewAvailabilityRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Gold")
	a := createTestAvailability(t, availRepo, "AVAILABLE", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.AddAvailability(ctx, p.ID(), a.ID()))
	require.NoError(t, repo.AddAvailability(ctx, p.ID(), a.ID()), "duplicate link is a no-op")

	has, err := repo.HasAvailability(ctx, p.ID(), a.ID())
	require.NoError(t, err)
	assert.True(t, has)

	ids, err := repo.AvailabilityIDs(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID()}, ids)

	require.NoError(t, repo.RemoveAvailability(ctx, p.ID(), a.ID()))
	has, err = repo.HasAvailability(ctx, p.ID(), a.ID())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPlanRepository_DeleteByID_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	userRepo := NewUserRepository(db, testLogger())
	orderRepo := NewOrderRepository(db)
	availRepo := NewAvailabilityRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Gold")
	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	createTestOrder(t, orderRepo, 49.99, u.ID(), p.ID())
	a := createTestAvailability(t, availRepo, "AVAILABLE", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, userRepo.AddPlanMembership(ctx, u.ID(), p.ID()))
	require.NoError(t, repo.AddAvailability(ctx, p.ID(), a.ID()))

	require.NoError(t, repo.DeleteByID(ctx, p.ID()))

	_, err := repo.FindByID(ctx, p.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	var orders, memberships, links int64
	require.NoError(t, db.Model(&models.OrderModel{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.UserPlanModel{}).Count(&memberships).Error)
	require.NoError(t, db.Model(&models.PlanAvailabilityModel{}).Count(&links).Error)
	assert.Zero(t, orders)
	assert.Zero(t, memberships)
	assert.Zero(t, links)

	// the user and availability survive
	_, err = userRepo.FindByID(ctx, u.ID())
	assert.NoError(t, err)
	_, err = availRepo.FindByID(ctx, a.ID())
	assert.NoError(t, err)
}
