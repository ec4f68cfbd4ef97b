package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/migration"
	"telmesh/internal/infrastructure/repository"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

func newTestService(t *testing.T) (*Service, uint) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db, log)

	u, err := user.NewUser("alice", "alice@example.com", "$2a$12$hash", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(context.Background(), u))

	return NewService(ticketRepo, userRepo, log), u.ID()
}

var createdDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestService_Create(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	tk, err := svc.Create(ctx, "router keeps rebooting", "OPEN", createdDate, userID)
	require.NoError(t, err)
	assert.NotZero(t, tk.ID())

	t.Run("missing user fails", func(t *testing.T) {
		_, err := svc.Create(ctx, "router keeps rebooting", "OPEN", createdDate, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("short description rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, "bad", "OPEN", createdDate, userID)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestService_Update(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	tk, err := svc.Create(ctx, "router keeps rebooting", "OPEN", createdDate, userID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, tk.ID(), "router replaced, monitoring", "RESOLVED")
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", updated.Status())
	assert.True(t, updated.CreatedDate().Equal(createdDate), "created date survives updates")
	assert.Equal(t, userID, updated.UserID(), "reporter survives updates")
}

func TestService_StatusQueries(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "router keeps rebooting", "OPEN", createdDate, userID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "slow speeds at night", "OPEN", createdDate, userID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "billing dispute", "CLOSED", createdDate, userID)
	require.NoError(t, err)

	open, err := svc.FindByStatus(ctx, "OPEN")
	require.NoError(t, err)
	assert.Len(t, open, 2)

	count, err := svc.CountByStatus(ctx, "CLOSED")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := svc.SearchByIssueDescription(ctx, "speeds")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestService_FindByUser(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "router keeps rebooting", "OPEN", createdDate, userID)
	require.NoError(t, err)

	tickets, err := svc.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	t.Run("missing user fails", func(t *testing.T) {
		_, err := svc.FindByUser(ctx, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
