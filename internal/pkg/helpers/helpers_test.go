package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size int
		offset     uint64
		limit      int
	}{
		{page: 1, size: 10, offset: 0, limit: 10},
		{page: 3, size: 10, offset: 20, limit: 10},
		{page: 0, size: 10, offset: 0, limit: 10},
		{page: 2, size: 0, offset: DefaultPageSize, limit: DefaultPageSize},
		{page: 2, size: MaxPageSize + 1, offset: DefaultPageSize, limit: DefaultPageSize},
	}

	for _, tt := range tests {
		offset, limit := CalculateOffsetLimit(tt.page, tt.size)
		assert.Equal(t, tt.offset, offset)
		assert.Equal(t, tt.limit, limit)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Parallel()

	info := NewPaginationInfo(41, 2, 20)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(41), info.TotalItems)

	empty := NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		page, size int
	}{
		{query: "", page: 0, size: 0},
		{query: "?sort=name", page: 0, size: 0},
		{query: "?page=2", page: 2, size: DefaultPageSize},
		{query: "?page=3&size=5", page: 3, size: 5},
		{query: "?page=abc&size=-1", page: DefaultPage, size: DefaultPageSize},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/campuses"+tt.query, nil)

		page, size := ParsePaginationParams(c)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.size, size, tt.query)
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("-5m", time.Hour))
}
