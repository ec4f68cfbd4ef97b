package feedback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		rating  int
		wantErr bool
	}{
		{"valid", "great service", 5, false},
		{"min rating", "great service", 1, false},
		{"rating too low", "great service", 0, true},
		{"rating too high", "great service", 6, true},
		{"text too short", "meh", 3, true},
		{"text too long", strings.Repeat("a", 501), 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.text, tt.rating)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewFeedback(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	f, err := NewFeedback("great service", 5, date, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "great service", f.Text())
	assert.Equal(t, 5, f.Rating())
	assert.Equal(t, uint(1), f.UserID())
	assert.Equal(t, uint(2), f.PlanID())

	t.Run("zero user rejected", func(t *testing.T) {
		_, err := NewFeedback("great service", 5, date, 0, 2)
		assert.Error(t, err)
	})

	t.Run("zero plan rejected", func(t *testing.T) {
		_, err := NewFeedback("great service", 5, date, 1, 0)
		assert.Error(t, err)
	})

	t.Run("zero date rejected", func(t *testing.T) {
		_, err := NewFeedback("great service", 5, time.Time{}, 1, 2)
		assert.Error(t, err)
	})
}

func TestFeedback_Update(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f, err := NewFeedback("great service", 5, date, 1, 2)
	require.NoError(t, err)

	require.NoError(t, f.Update("could be better", 3, date, 1, 2))
	assert.Equal(t, "could be better", f.Text())
	assert.Equal(t, 3, f.Rating())
	assert.Equal(t, 2, f.Version())

	assert.Error(t, f.Update("could be better", 9, date, 1, 2))
	assert.Equal(t, 3, f.Rating())
}
