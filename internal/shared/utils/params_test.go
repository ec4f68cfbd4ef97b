package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "telmesh/internal/shared/errors"
)

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		value   string
		want    uint
		wantErr bool
	}{
		{"valid id", "42", 42, false},
		{"zero rejected", "0", 0, true},
		{"negative rejected", "-1", 0, true},
		{"garbage rejected", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			id, err := ParseIDParam(c, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		c := ginContextWithQuery("start=2025-06-01T00:00:00&end=2025-06-30T00:00:00")
		start, end, err := ParseTimeRange(c)
		require.NoError(t, err)
		assert.True(t, start.Before(end))
	})

	t.Run("missing end rejected", func(t *testing.T) {
		c := ginContextWithQuery("start=2025-06-01T00:00:00")
		_, _, err := ParseTimeRange(c)
		assert.Error(t, err)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		c := ginContextWithQuery("start=2025-06-30T00:00:00&end=2025-06-01T00:00:00")
		_, _, err := ParseTimeRange(c)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("malformed value rejected", func(t *testing.T) {
		c := ginContextWithQuery("start=June-1&end=2025-06-30T00:00:00")
		_, _, err := ParseTimeRange(c)
		assert.Error(t, err)
	})
}
