package partition_test

import (
	"testing"

	"github.com/katalvlaran/dtwconn/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakpoints_Validate(t *testing.T) {
	require.NoError(t, partition.Breakpoints{0, 2, 4}.Validate(4))
	require.NoError(t, partition.Breakpoints{0, 0, 4, 4}.Validate(4), "empty ranges are legal")

	bad := []partition.Breakpoints{
		nil,
		{0},
		{1, 4},
		{0, 3},
		{0, 3, 2, 4},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.Validate(4), partition.ErrBadBreakpoints, "breakpoints %v", b)
	}
}

func TestBreakpoints_Ranges(t *testing.T) {
	b := partition.Breakpoints{0, 2, 4}
	assert.Equal(t, 2, b.Workers())
	assert.Equal(t, []partition.Range{{Begin: 0, End: 2}, {Begin: 2, End: 4}}, b.Ranges())
	assert.Nil(t, partition.Breakpoints{0}.Ranges())
	assert.Equal(t, 0, partition.Breakpoints(nil).Workers())
}

func TestRange_Comparisons(t *testing.T) {
	// 4 series, rows {0,1} → (0,1),(0,2),(0,3),(1,2),(1,3)
	assert.Equal(t, int64(5), partition.Range{Begin: 0, End: 2}.Comparisons(4))
	// row {2} → (2,3); row {3} → none
	assert.Equal(t, int64(1), partition.Range{Begin: 2, End: 4}.Comparisons(4))
	assert.Equal(t, int64(0), partition.Range{Begin: 3, End: 4}.Comparisons(4))
	assert.Equal(t, 2, partition.Range{Begin: 2, End: 4}.Len())
	assert.Equal(t, "[2,4)", partition.Range{Begin: 2, End: 4}.String())
}

// TestBalanced_Coverage checks that the ranges tile [0,n) exactly once.
func TestBalanced_Coverage(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 17, 100, 1000} {
		for _, k := range []int{1, 2, 3, 8, 16} {
			b, err := partition.Balanced(n, k)
			require.NoError(t, err)
			require.NoError(t, b.Validate(n), "n=%d k=%d b=%v", n, k, b)
			require.Len(t, b, k+1)

			seen := make([]int, n)
			for _, r := range b.Ranges() {
				for i := r.Begin; i < r.End; i++ {
					seen[i]++
				}
			}
			for i, c := range seen {
				assert.Equal(t, 1, c, "row %d covered %d times (n=%d k=%d)", i, c, n, k)
			}
		}
	}
}

// TestBalanced_EqualizesComparisons checks that no range carries much more
// than its share, which row-count splitting would violate badly.
func TestBalanced_EqualizesComparisons(t *testing.T) {
	const n, k = 1000, 8
	b, err := partition.Balanced(n, k)
	require.NoError(t, err)

	total := int64(n * (n - 1) / 2)
	share := total / k
	for _, r := range b.Ranges() {
		c := r.Comparisons(n)
		assert.InDelta(t, float64(share), float64(c), float64(2*n), "range %s carries %d", r, c)
	}
	// first range must hold fewer rows than the last: rows are front-loaded
	rs := b.Ranges()
	assert.Less(t, rs[0].Len(), rs[len(rs)-1].Len())
}

func TestBalanced_Small(t *testing.T) {
	b, err := partition.Balanced(4, 2)
	require.NoError(t, err)
	assert.Equal(t, partition.Breakpoints{0, 1, 4}, b)
}

func TestBalanced_Errors(t *testing.T) {
	_, err := partition.Balanced(10, 0)
	assert.ErrorIs(t, err, partition.ErrBadWorkers)
	_, err = partition.Balanced(-1, 2)
	assert.ErrorIs(t, err, partition.ErrBadSize)
}
