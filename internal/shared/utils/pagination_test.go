package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"telmesh/internal/shared/constants"
)

func ginContextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values pass through", 2, 20, 2, 20},
		{"zero page defaults", 0, 20, constants.DefaultPage, 20},
		{"negative page defaults", -5, 20, constants.DefaultPage, 20},
		{"zero size defaults", 2, 0, 2, constants.DefaultPageSize},
		{"oversized page size capped", 1, constants.MaxPageSize + 1, 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, Pagination{Page: 3, PageSize: 10}.Offset())
}

func TestParsePagination(t *testing.T) {
	t.Run("reads query parameters", func(t *testing.T) {
		c := ginContextWithQuery("page=3&page_size=25")
		p := ParsePagination(c)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.PageSize)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		c := ginContextWithQuery("page=abc&page_size=-1")
		p := ParsePagination(c)
		assert.Equal(t, constants.DefaultPage, p.Page)
		assert.Equal(t, constants.DefaultPageSize, p.PageSize)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(5, 0))
}
