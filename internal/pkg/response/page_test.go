package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("total pages rounds up", func(t *testing.T) {
		p := NewPagination(1, 10, 25)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("exact division", func(t *testing.T) {
		p := NewPagination(1, 10, 30)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("empty collection", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("has next iff page below total pages", func(t *testing.T) {
		assert.True(t, NewPagination(1, 10, 25).HasNext)
		assert.True(t, NewPagination(2, 10, 25).HasNext)
		assert.False(t, NewPagination(3, 10, 25).HasNext)
	})

	t.Run("has prev iff page above one", func(t *testing.T) {
		assert.False(t, NewPagination(1, 10, 25).HasPrev)
		assert.True(t, NewPagination(2, 10, 25).HasPrev)
	})

	t.Run("page past the end", func(t *testing.T) {
		p := NewPagination(9, 10, 25)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("ceil property holds across sizes", func(t *testing.T) {
		for limit := 1; limit <= 12; limit++ {
			for total := 0; total <= 40; total++ {
				p := NewPagination(1, limit, total)
				want := (total + limit - 1) / limit
				assert.Equal(t, want, p.TotalPages, "limit=%d total=%d", limit, total)
			}
		}
	})
}

func TestNewPageResponse(t *testing.T) {
	t.Run("nil items marshal as empty array", func(t *testing.T) {
		resp := NewPageResponse[string](nil, 1, 10, 0)
		assert.NotNil(t, resp.Items)
		assert.Len(t, resp.Items, 0)
	})

	t.Run("carries items and pagination", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2, 3}, 2, 3, 7)
		assert.Equal(t, []int{1, 2, 3}, resp.Items)
		assert.Equal(t, 2, resp.Pagination.Page)
		assert.Equal(t, 3, resp.Pagination.Limit)
		assert.Equal(t, 7, resp.Pagination.TotalCount)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.True(t, resp.Pagination.HasNext)
		assert.True(t, resp.Pagination.HasPrev)
	})
}
