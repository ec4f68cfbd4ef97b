package availability

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAvailability(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  string
		date    time.Time
		wantErr bool
	}{
		{"valid", "AVAILABLE", date, false},
		{"status too short", "OK", date, true},
		{"status too long", strings.Repeat("a", 101), date, true},
		{"zero date", "AVAILABLE", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAvailability(tt.status, tt.date)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, a.Status())
			assert.True(t, a.AvailabilityDate().Equal(tt.date))
			assert.Equal(t, 1, a.Version())
		})
	}
}

func TestAvailability_Update(t *testing.T) {
	a, err := NewAvailability("PLANNED", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	newDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, a.Update("AVAILABLE", newDate))
	assert.Equal(t, "AVAILABLE", a.Status())
	assert.True(t, a.AvailabilityDate().Equal(newDate))
	assert.Equal(t, 2, a.Version())

	assert.Error(t, a.Update("no", newDate))
	assert.Equal(t, "AVAILABLE", a.Status())
}
