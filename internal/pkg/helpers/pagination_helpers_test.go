package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	// Out-of-range values fall back to defaults.
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("ExactMultiple", func(t *testing.T) {
		info := NewPaginationInfo(30, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(30), info.TotalItems)
	})

	t.Run("PartialLastPage", func(t *testing.T) {
		info := NewPaginationInfo(31, 1, 10)
		assert.Equal(t, 4, info.TotalPages)
	})

	t.Run("EmptyResultHasOnePage", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("CurrentPageClampedToTotal", func(t *testing.T) {
		info := NewPaginationInfo(10, 5, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("DefaultsForInvalidInput", func(t *testing.T) {
		info := NewPaginationInfo(5, 0, 0)
		assert.Equal(t, 1, info.CurrentPage)
		assert.Equal(t, DefaultPageSize, info.PageSize)
	})
}
