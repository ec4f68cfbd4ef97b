package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   string
		date     time.Time
		regionID uint
		wantErr  bool
	}{
		{"valid", "OPERATIONAL", date, 1, false},
		{"status too short", "OK", date, 1, true},
		{"zero date", "OPERATIONAL", time.Time{}, 1, true},
		{"zero region", "OPERATIONAL", date, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStatus(tt.status, tt.date, tt.regionID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, s.StatusValue())
			require.NotNil(t, s.RegionID())
			assert.Equal(t, tt.regionID, *s.RegionID())
		})
	}
}

func TestStatus_ChangeStatus(t *testing.T) {
	s, err := NewStatus("OPERATIONAL", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	require.NoError(t, s.ChangeStatus("DEGRADED"))
	assert.Equal(t, "DEGRADED", s.StatusValue())
	assert.Equal(t, 2, s.Version())

	assert.Error(t, s.ChangeStatus("no"))
	assert.Equal(t, "DEGRADED", s.StatusValue())
}

func TestStatus_RegionAssignment(t *testing.T) {
	s, err := NewStatus("OPERATIONAL", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	require.NoError(t, s.AssignRegion(2))
	assert.Equal(t, uint(2), *s.RegionID())

	s.ClearRegion()
	assert.Nil(t, s.RegionID())

	assert.Error(t, s.AssignRegion(0))
}
