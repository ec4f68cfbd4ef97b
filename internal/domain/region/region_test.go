package region

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion(t *testing.T) {
	tests := []struct {
		name        string
		regionName  string
		description string
		wantErr     bool
	}{
		{"valid", "North", "northern coverage area", false},
		{"empty description ok", "South", "", false},
		{"name too short", "No", "x", true},
		{"name too long", strings.Repeat("a", 101), "x", true},
		{"description too long", "East", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegion(tt.regionName, tt.description)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.regionName, r.Name())
			assert.Equal(t, tt.description, r.Description())
			assert.Equal(t, 1, r.Version())
		})
	}
}

func TestRegion_Update(t *testing.T) {
	r, err := NewRegion("North", "old")
	require.NoError(t, err)

	require.NoError(t, r.Update("North-East", "new"))
	assert.Equal(t, "North-East", r.Name())
	assert.Equal(t, "new", r.Description())
	assert.Equal(t, 2, r.Version())

	assert.Error(t, r.Update("x", "new"))
	assert.Equal(t, "North-East", r.Name(), "failed update must not mutate")
}
