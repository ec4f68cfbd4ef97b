package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telmesh/internal/domain/ticket"
	apperrors "telmesh/internal/shared/errors"
)

func createTestTicket(t *testing.T, repo *TicketRepository, description, status string, userID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(description, status, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), userID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")

	tk := createTestTicket(t, repo, "router keeps rebooting", "OPEN", u.ID())
	assert.NotZero(t, tk.ID())

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "router keeps rebooting", found.IssueDescription())
	assert.Equal(t, "OPEN", found.Status())
}

func TestTicketRepository_StatusQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	createTestTicket(t, repo, "router keeps rebooting", "OPEN", u.ID())
	createTestTicket(t, repo, "slow speeds at night", "OPEN", u.ID())
	createTestTicket(t, repo, "billing dispute", "CLOSED", u.ID())

	open, err := repo.FindByStatus(ctx, "OPEN")
	require.NoError(t, err)
	assert.Len(t, open, 2)

	count, err := repo.CountByStatus(ctx, "OPEN")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	none, err := repo.CountByStatus(ctx, "ESCALATED")
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestTicketRepository_SearchByIssueDescription(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	createTestTicket(t, repo, "Router keeps rebooting", "OPEN", u.ID())
	createTestTicket(t, repo, "billing dispute", "OPEN", u.ID())

	found, err := repo.SearchByIssueDescription(ctx, "ROUTER")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Router keeps rebooting", found[0].IssueDescription())
}

func TestTicketRepository_FindByCreatedDateBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	createTestTicket(t, repo, "router keeps rebooting", "OPEN", u.ID()) // 2025-06-01

	found, err := repo.FindByCreatedDateBetween(ctx,
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestTicketRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	userRepo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, userRepo, "alice", "alice@example.com")
	tk := createTestTicket(t, repo, "router keeps rebooting", "OPEN", u.ID())

	require.NoError(t, repo.DeleteByID(ctx, tk.ID()))
	err := repo.DeleteByID(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}
