package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := rangeInts(25)

	page := Paginate(items, 10, 1)
	require.Len(t, page, 10)
	assert.Equal(t, 1, page[0])
	assert.Equal(t, 10, page[9])

	// Last partial page.
	page = Paginate(items, 10, 3)
	require.Len(t, page, 5)
	assert.Equal(t, 21, page[0])
	assert.Equal(t, 25, page[4])

	// Out-of-range page is silently empty.
	assert.Empty(t, Paginate(items, 10, 4))
}

func TestPaginateEdgeCases(t *testing.T) {
	assert.Empty(t, Paginate([]int{}, 10, 1))
	assert.Equal(t, 0, TotalPages(0, 10))

	// Page size larger than the collection: one page with everything.
	items := rangeInts(3)
	assert.Equal(t, items, Paginate(items, 10, 1))
	assert.Equal(t, 1, TotalPages(3, 10))

	assert.Empty(t, Paginate(items, 0, 1))
	assert.Empty(t, Paginate(items, 10, 0))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 2, TotalPages(20, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 0, TotalPages(10, 0))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 25, 10))
	assert.Equal(t, 2, ClampPage(2, 25, 10))
	assert.Equal(t, 3, ClampPage(7, 25, 10))
	// Empty collection still yields a sane page number.
	assert.Equal(t, 1, ClampPage(5, 0, 10))
}
