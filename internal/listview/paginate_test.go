package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateBoundaries(t *testing.T) {
	items := sequence(12)

	first := Paginate(items, 1, 10)
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 1, first.Number)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 1, first.Items[0])

	second := Paginate(items, 2, 10)
	assert.Equal(t, 2, second.Number)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, []int{11, 12}, second.Items)

	// page past the end clamps to the last page
	clamped := Paginate(items, 3, 10)
	assert.Equal(t, 2, clamped.Number)
	assert.Equal(t, []int{11, 12}, clamped.Items)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]int{}, 5, 10)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
}

func TestPaginateClampsLowPages(t *testing.T) {
	items := sequence(3)
	for _, requested := range []int{-10, 0, 1} {
		page := Paginate(items, requested, 10)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Items, 3)
	}
}

func TestPaginateInvariants(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for _, pageSize := range []int{1, 3, 10} {
			for requested := -2; requested <= 10; requested++ {
				page := Paginate(sequence(n), requested, pageSize)

				wantPages := (n + pageSize - 1) / pageSize
				if wantPages < 1 {
					wantPages = 1
				}
				assert.Equal(t, wantPages, page.TotalPages, "n=%d k=%d", n, pageSize)
				assert.LessOrEqual(t, len(page.Items), pageSize)
				assert.GreaterOrEqual(t, page.Number, 1)
				assert.LessOrEqual(t, page.Number, page.TotalPages)
				if n == 0 {
					assert.Empty(t, page.Items)
				} else if page.Number < page.TotalPages {
					assert.Len(t, page.Items, pageSize)
				} else {
					assert.NotEmpty(t, page.Items)
				}
			}
		}
	}
}
