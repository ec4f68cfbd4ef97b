package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		description string
		status      string
		date        time.Time
		userID      uint
		wantErr     bool
	}{
		{"valid", "router keeps rebooting", "OPEN", date, 1, false},
		{"free-form status", "router keeps rebooting", "waiting on customer", date, 1, false},
		{"description too short", "bad", "OPEN", date, 1, true},
		{"description too long", strings.Repeat("a", 1001), "OPEN", date, 1, true},
		{"empty status", "router keeps rebooting", "", date, 1, true},
		{"status too long", "router keeps rebooting", strings.Repeat("a", 51), date, 1, true},
		{"zero date", "router keeps rebooting", "OPEN", time.Time{}, 1, true},
		{"zero user", "router keeps rebooting", "OPEN", date, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.description, tt.status, tt.date, tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.description, tk.IssueDescription())
			assert.Equal(t, tt.status, tk.Status())
			assert.Equal(t, tt.userID, tk.UserID())
		})
	}
}

func TestTicket_Update(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tk, err := NewTicket("router keeps rebooting", "OPEN", date, 1)
	require.NoError(t, err)

	require.NoError(t, tk.Update("router replaced, monitoring", "RESOLVED"))
	assert.Equal(t, "RESOLVED", tk.Status())
	assert.Equal(t, 2, tk.Version())
	assert.True(t, tk.CreatedDate().Equal(date), "created date is immutable")

	assert.Error(t, tk.Update("bad", "RESOLVED"))
	assert.Equal(t, "router replaced, monitoring", tk.IssueDescription())
}
