package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageSize   int
		expected   int
	}{
		{"empty collection", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 100, 1},
		{"page size one", 5, 1, 5},
		{"zero page size clamps to one", 5, 0, 5},
		{"negative page size clamps to one", 3, -10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageCount(tt.totalCount, tt.pageSize))
		})
	}
}

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("first page", func(t *testing.T) {
		result := PageSlice(items, 1, 3)

		assert.Equal(t, []int{1, 2, 3}, result.Data)
		assert.Equal(t, 7, result.TotalCount)
		assert.Equal(t, 1, result.PageNumber)
		assert.Equal(t, 3, result.PageSize)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("partial last page", func(t *testing.T) {
		result := PageSlice(items, 3, 3)

		assert.Equal(t, []int{7}, result.Data)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("page beyond the end is empty, not an error", func(t *testing.T) {
		result := PageSlice(items, 10, 3)

		assert.Empty(t, result.Data)
		assert.NotNil(t, result.Data)
		assert.Equal(t, 7, result.TotalCount)
		assert.Equal(t, 10, result.PageNumber)
	})

	t.Run("non-positive page number clamps to one", func(t *testing.T) {
		result := PageSlice(items, 0, 3)

		assert.Equal(t, []int{1, 2, 3}, result.Data)
		assert.Equal(t, 1, result.PageNumber)
	})

	t.Run("non-positive page size clamps to one", func(t *testing.T) {
		result := PageSlice(items, 1, 0)

		assert.Equal(t, []int{1}, result.Data)
		assert.Equal(t, 1, result.PageSize)
		assert.Equal(t, 7, result.TotalPages)
	})

	t.Run("empty input yields an empty slice", func(t *testing.T) {
		result := PageSlice([]int{}, 1, 10)

		assert.Empty(t, result.Data)
		assert.NotNil(t, result.Data)
		assert.Equal(t, 0, result.TotalPages)
	})

	t.Run("data is a copy of the input", func(t *testing.T) {
		src := []int{1, 2, 3}
		result := PageSlice(src, 1, 3)

		result.Data[0] = 99
		assert.Equal(t, 1, src[0])
	})

	t.Run("page length contract", func(t *testing.T) {
		for page := 1; page <= 5; page++ {
			for size := 1; size <= 4; size++ {
				result := PageSlice(items, page, size)

				want := len(items) - (page-1)*size
				if want < 0 {
					want = 0
				}
				if want > size {
					want = size
				}
				assert.Len(t, result.Data, want, "page=%d size=%d", page, size)
			}
		}
	})
}
