package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telmesh/internal/domain/region"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

func TestRegionRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegionRepository(db, testLogger())
	ctx := context.Background()

	r := createTestRegion(t, repo, "North")
	assert.NotZero(t, r.ID())

	t.Run("duplicate name returns conflict", func(t *testing.T) {
		dup, err := region.NewRegion("North", "another")
		require.NoError(t, err)
		err = repo.Save(ctx, dup)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("update persists changes", func(t *testing.T) {
		require.NoError(t, r.Update("North-East", "renamed"))
		require.NoError(t, repo.Save(ctx, r))

		found, err := repo.FindByID(ctx, r.ID())
		require.NoError(t, err)
		assert.Equal(t, "North-East", found.Name())
	})
}

func TestRegionRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegionRepository(db, testLogger())
	ctx := context.Background()

	r1, err := region.NewRegion("North Metro", "dense urban fiber")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, r1))
	r2, err := region.NewRegion("South Rural", "sparse coverage")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, r2))

	byName, err := repo.SearchByName(ctx, "metro")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "North Metro", byName[0].Name())

	byDesc, err := repo.SearchByDescription(ctx, "COVERAGE")
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	assert.Equal(t, "South Rural", byDesc[0].Name())
}

func TestRegionRepository_DeleteByID_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRegionRepository(db, testLogger())
	userRepo := NewUserRepository(db, testLogger())
	networkRepo := NewNetworkStatusRepository(db, testLogger())
	ctx := context.Background()

	r := createTestRegion(t, repo, "North")

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	require.NoError(t, u.AssignRegion(r.ID()))
	require.NoError(t, userRepo.Save(ctx, u))

	createTestNetworkStatus(t, networkRepo, "OPERATIONAL", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), r.ID())

	// a user outside the region is untouched
	outsider := createTestUser(t, userRepo, "bob", "bob@example.com")

	require.NoError(t, repo.DeleteByID(ctx, r.ID()))

	_, err := repo.FindByID(ctx, r.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = userRepo.FindByID(ctx, u.ID())
	assert.True(t, apperrors.IsNotFoundError(err), "region users are deleted with the region")

	var statuses int64
	require.NoError(t, db.Model(&models.NetworkStatusModel{}).Count(&statuses).Error)
	assert.Zero(t, statuses)

	_, err = userRepo.FindByID(ctx, outsider.ID())
	assert.NoError(t, err)
}
