package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telmesh/internal/domain/network"
	"telmesh/internal/infrastructure/persistence/models"
	apperrors "telmesh/internal/shared/errors"
)

func TestNetworkStatusRepository_SaveAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNetworkStatusRepository(db, testLogger())
	regionRepo := NewRegionRepository(db, testLogger())
	ctx := context.Background()

	r := createTestRegion(t, regionRepo, "North")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	s1 := createTestNetworkStatus(t, repo, "OPERATIONAL", date, r.ID())
	s2 := createTestNetworkStatus(t, repo, "DEGRADED", date, r.ID())

	require.NoError(t, s1.ChangeStatus("OUTAGE"))
	require.NoError(t, s2.ChangeStatus("OUTAGE"))
	require.NoError(t, repo.SaveAll(ctx, []*network.Status{s1, s2}))

	found, err := repo.FindByID(ctx, s1.ID())
	require.NoError(t, err)
	assert.Equal(t, "OUTAGE", found.StatusValue())
}

func TestNetworkStatusRepository_FindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNetworkStatusRepository(db, testLogger())
	regionRepo := NewRegionRepository(db, testLogger())
	ctx := context.Background()

	r := createTestRegion(t, regionRepo, "North")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s1 := createTestNetworkStatus(t, repo, "OPERATIONAL", date, r.ID())
	s2 := createTestNetworkStatus(t, repo, "DEGRADED", date, r.ID())

	t.Run("unknown ids are skipped", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, []uint{s1.ID(), s2.ID(), 999})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("empty input returns nil", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestNetworkStatusRepository_FindByRegionID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNetworkStatusRepository(db, testLogger())
	regionRepo := NewRegionRepository(db, testLogger())
	ctx := context.Background()

	north := createTestRegion(t, regionRepo, "North")
	south := createTestRegion(t, regionRepo, "South")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	createTestNetworkStatus(t, repo, "OPERATIONAL", date, north.ID())
	createTestNetworkStatus(t, repo, "DEGRADED", date, south.ID())

	found, err := repo.FindByRegionID(ctx, north.ID())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "OPERATIONAL", found[0].StatusValue())
}

func TestNetworkStatusRepository_AvailabilityLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNetworkStatusRepository(db, testLogger())
	regionRepo := NewRegionRepository(db, testLogger())
	availRepo := NewAvailabilityRepository(db)
	ctx := context.Background()

	r := createTestRegion(t, regionRepo, "North")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := createTestNetworkStatus(t, repo, "OPERATIONAL", date, r.ID())
	a := createTestAvailability(t, availRepo, "AVAILABLE", date)

	require.NoError(t, repo.AddAvailability(ctx, s.ID(), a.ID()))
	require.NoError(t, repo.AddAvailability(ctx, s.ID(), a.ID()), "duplicate link is a no-op")

	has, err := repo.HasAvailability(ctx, s.ID(), a.ID())
	require.NoError(t, err)
	assert.True(t, has)

	byAvail, err := repo.FindByAvailabilityID(ctx, a.ID())
	require.NoError(t, err)
	require.Len(t, byAvail, 1)
	assert.Equal(t, s.ID(), byAvail[0].ID())

	require.NoError(t, repo.RemoveAvailability(ctx, s.ID(), a.ID()))
	has, err = repo.HasAvailability(ctx, s.ID(), a.ID())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestNetworkStatusRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNetworkStatusRepository(db, testLogger())
	regionRepo := NewRegionRepository(db, testLogger())
	availRepo := NewAvailabilityRepository(db)
	ctx := context.Background()

	r := createTestRegion(t, regionRepo, "North")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := createTestNetworkStatus(t, repo, "OPERATIONAL", date, r.ID())
	a := createTestAvailability(t, availRepo, "AVAILABLE", date)
	require.NoError(t, repo.AddAvailability(ctx, s.ID(), a.ID()))

	require.NoError(t, repo.DeleteByID(ctx, s.ID()))

	_, err := repo.FindByID(ctx, s.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	var links int64
	require.NoError(t, db.Model(&models.NetworkAvailabilityModel{}).Count(&links).Error)
	assert.Zero(t, links)

	// the availability itself survives
	_, err = availRepo.FindByID(ctx, a.ID())
	assert.NoError(t, err)
}
