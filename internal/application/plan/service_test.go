package plan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telmesh/internal/domain/availability"
	"telmesh/internal/domain/feedback"
	"telmesh/internal/domain/user"
	"telmesh/internal/infrastructure/migration"
	"telmesh/internal/infrastructure/repository"
	apperrors "telmesh/internal/shared/errors"
	"telmesh/internal/shared/logger"
)

type testEnv struct {
	svc          *Service
	userRepo     *repository.UserRepository
	availRepo    *repository.AvailabilityRepository
	feedbackRepo *repository.FeedbackRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLogger()
	planRepo := repository.NewPlanRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	availRepo := repository.NewAvailabilityRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	return &testEnv{
		svc:          NewService(planRepo, userRepo, availRepo, feedbackRepo, log),
		userRepo:     userRepo,
		availRepo:    availRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, username+"@example.com", "$2a$12$hash", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, e.userRepo.Save(context.Background(), u))
	return u
}

func TestService_Create(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.Create(ctx, "Gold", "1 Gbps fiber")
	require.NoError(t, err)
	assert.NotZero(t, p.ID())

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := env.svc.Create(ctx, "Gold", "another gold")
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestService_SubscriberRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.Create(ctx, "Gold", "")
	require.NoError(t, err)
	u := env.createUser(t, "alice")

	require.NoError(t, env.svc.AddUser(ctx, p.ID(), u.ID()))

	// both sides of the association observe the link
	users, err := env.svc.Users(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u.ID(), users[0].ID())

	has, err := env.userRepo.HasPlanMembership(ctx, u.ID(), p.ID())
	require.NoError(t, err)
	assert.True(t, has)

	count, err := env.svc.CountUsers(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, env.svc.RemoveUser(ctx, p.ID(), u.ID()))
	users, err = env.svc.Users(ctx, p.ID())
	require.NoError(t, err)
	assert.Empty(t, users)

	t.Run("remove when not subscribed fails", func(t *testing.T) {
		err := env.svc.RemoveUser(ctx, p.ID(), u.ID())
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestService_AvailabilityLinks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.Create(ctx, "Gold", "")
	require.NoError(t, err)

	a, err := availability.NewAvailability("AVAILABLE", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, env.availRepo.Save(ctx, a))

	require.NoError(t, env.svc.AddAvailability(ctx, p.ID(), a.ID()))

	linked, err := env.svc.Availabilities(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, a.ID(), linked[0].ID())

	require.NoError(t, env.svc.RemoveAvailability(ctx, p.ID(), a.ID()))

	t.Run("remove unlinked availability fails", func(t *testing.T) {
		err := env.svc.RemoveAvailability(ctx, p.ID(), a.ID())
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("link to missing availability fails", func(t *testing.T) {
		err := env.svc.AddAvailability(ctx, p.ID(), 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestService_Feedback(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.svc.Create(ctx, "Gold", "")
	require.NoError(t, err)
	u := env.createUser(t, "alice")

	f, err := feedback.NewFeedback("great service", 5, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), u.ID(), p.ID())
	require.NoError(t, err)
	require.NoError(t, env.feedbackRepo.Save(ctx, f))

	found, err := env.svc.Feedback(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "great service", found[0].Text())

	t.Run("missing plan fails", func(t *testing.T) {
		_, err := env.svc.Feedback(ctx, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
