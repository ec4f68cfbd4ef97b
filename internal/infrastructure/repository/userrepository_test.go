package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	t.Run("create assigns id", func(t *testing.T) {
		u := createTestUser(t, repo, "alice", "alice@example.com")
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate username returns conflict", func(t *testing.T) {
		u, err := user.NewUser("alice", "other@example.com", "$2a$12$hash", user.RoleUser)
		require.NoError(t, err)
		err = repo.Save(ctx, u)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("update persists profile changes", func(t *testing.T) {
		u := createTestUser(t, repo, "bob", "bob@example.com")
		require.NoError(t, u.UpdateProfile("bobby", "bob@example.com", user.RoleAdmin))
		require.NoError(t, repo.Save(ctx, u))

		found, err := repo.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "bobby", found.Username())
		assert.Equal(t, user.RoleAdmin, found.Role())
	})
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())

	_, err := repo.FindByID(context.Background(), 999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUserRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	createTestUser(t, repo, "alice", "alice@example.com")
	createTestUser(t, repo, "alicia", "alicia@example.com")
	createTestUser(t, repo, "bob", "bob@example.com")

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		found, err := repo.SearchByUsername(ctx, "ALI")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		found, err := repo.SearchByUsername(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestUserRepository_FindByRole(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	createTestUser(t, repo, "alice", "alice@example.com")
	admin, err := user.NewUser("root", "root@example.com", "$2a$12$hash", user.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, admin))

	admins, err := repo.FindByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "root", admins[0].Username())
}

func TestUserRepository_PlanMembership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	planRepo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, repo, "alice", "alice@example.com")
	p := createTestPlan(t, planRepo, "Gold")

	require.NoError(t, repo.AddPlanMembership(ctx, u.ID(), p.ID()))

	t.Run("duplicate add is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.AddPlanMembership(ctx, u.ID(), p.ID()))

		ids, err := repo.PlanIDs(ctx, u.ID())
		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})

	t.Run("has membership after add", func(t *testing.T) {
		has, err := repo.HasPlanMembership(ctx, u.ID(), p.ID())
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("find users by plan joins membership", func(t *testing.T) {
		users, err := repo.FindByPlanID(ctx, p.ID())
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, u.ID(), users[0].ID())
	})

	t.Run("remove clears membership", func(t *testing.T) {
		require.NoError(t, repo.RemovePlanMembership(ctx, u.ID(), p.ID()))
		has, err := repo.HasPlanMembership(ctx, u.ID(), p.ID())
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestUserRepository_DeleteByID_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	planRepo := NewPlanRepository(db, testLogger())
	orderRepo := NewOrderRepository(db)
	paymentRepo := NewPaymentRepository(db)
	ctx := context.Background()

	u := createTestUser(t, repo, "alice", "alice@example.com")
	p := createTestPlan(t, planRepo, "Gold")
	o := createTestOrder(t, orderRepo, 49.99, u.ID(), p.ID())
	orderID := o.ID()
	createTestPayment(t, paymentRepo, 49.99, u.ID(), &orderID)
	require.NoError(t, repo.AddPlanMembership(ctx, u.ID(), p.ID()))

	require.NoError(t, repo.DeleteByID(ctx, u.ID()))

	_, err := repo.FindByID(ctx, u.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	var orders, payments, memberships int64
	require.NoError(t, db.Model(&models.OrderModel{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.PaymentModel{}).Count(&payments).Error)
	require.NoError(t, db.Model(&models.UserPlanModel{}).Count(&memberships).Error)
	assert.Zero(t, orders)
	assert.Zero(t, payments)
	assert.Zero(t, memberships)

	// the plan survives the cascade
	_, err = planRepo.FindByID(ctx, p.ID())
	assert.NoError(t, err)

	t.Run("delete missing user returns not found", func(t *testing.T) {
		err := repo.DeleteByID(ctx, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
