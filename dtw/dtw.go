package dtw

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dtwconn/metric"
)

// DTW — banded Dynamic Time Warping over int64 samples
//
// Description:
//
//	DTW measures similarity between two sequences that may vary in time or
//	speed by finding the cheapest monotone alignment ("warping path").
//	The search is restricted to a Sakoe–Chiba band around the diagonal.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b), w' = max(Window, |n−m|).
//     Allocate (n+1)x(m+1) DP table D filled with metric.Inf.
//  2. Initialize D[0][0] = 0 (empty-prefix origin).
//  3. For i = 1..n:
//     For j = max(1, i−w')..min(m, i+w'):
//     cost    = Metric.Cost(a[i-1], b[j-1])
//     D[i][j] = cost + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//     Cells outside the band keep metric.Inf and are never reachable.
//  4. distance = D[n][m].
//  5. If ReturnPath && MemoryMode==FullMatrix, backtrack from (n,m) to (1,1)
//     following the cheapest predecessor (diagonal wins ties).
//
// Memory Modes:
//   - FullMatrix   — store full D, support ReturnPath. Memory: O(n·m).
//   - RollingArray — two rows over the shorter sequence. Memory: O(min(n,m)).
//     The recurrence is symmetric for symmetric metrics, so swapping the
//     operands does not change the distance.
//
// Complexity:
//
//	Time   = O(n·w'), O(n·m) when the band covers the table
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (RollingArray)
//
// Errors:
//   - ErrBadWindow             — Window < 0.
//   - metric.ErrUnknownMetric  — Metric is not a supported kind.
//   - ErrPathNeedsFullMatrix   — ReturnPath=true with RollingArray mode.
//   - ErrBadMemoryMode         — MemoryMode outside the known set.
//   - ErrEmptySequence         — exactly one input is empty.
var (
	// ErrEmptySequence indicates that exactly one of the inputs is empty.
	// Two empty inputs align trivially at distance 0.
	ErrEmptySequence = errors.New("dtw: cannot align an empty sequence with a non-empty one")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrBadWindow indicates a negative window width.
	ErrBadWindow = errors.New("dtw: window width must be non-negative")

	// ErrBadMemoryMode indicates a MemoryMode value outside the known set.
	ErrBadMemoryMode = errors.New("dtw: unknown memory mode")
)

// EffectiveWindow returns the band half-width actually used for sequences of
// lengths n and m: max(w, |n−m|). Without the enlargement the band could
// exclude cell (n,m) entirely.
func EffectiveWindow(w, n, m int) int {
	d := abs(n - m)
	if w < d {
		return d
	}

	return w
}

// DTW computes the banded Dynamic Time Warping distance between a and b.
// Returns (distance, path, error). distance is metric.Inf when no path fits
// in the band or the accumulated cost saturates.
//
// A nil opts means DefaultOptions().
//
// Example:
//
//	opts := Options{Window: 2, Metric: metric.L1, ReturnPath: true, MemoryMode: FullMatrix}
//	dist, path, err := DTW(seqA, seqB, &opts)
func DTW(a, b []int64, opts *Options) (distance int64, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = validate(o); err != nil {
		return 0, nil, err
	}

	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return 0, nil, nil
	case n == 0 || m == 0:
		return metric.Inf, nil, ErrEmptySequence
	}

	w := EffectiveWindow(o.Window, n, m)
	// A band wider than both sequences is the full table; clamping keeps i+w from overflowing.
	if w > n+m {
		w = n + m
	}

	if o.MemoryMode == RollingArray {
		return rolling(a, b, o.Metric, w), nil, nil
	}

	dp := fullTable(a, b, o.Metric, w)
	distance = dp[n][m]
	if o.ReturnPath && distance != metric.Inf {
		path = backtrack(dp)
	}

	return distance, path, nil
}

// Distance is the distance-only fast path used by the pairwise workers:
// RollingArray storage, no path.
func Distance(a, b []int64, kind metric.Kind, window int) (int64, error) {
	opts := Options{Window: window, Metric: kind, MemoryMode: RollingArray}
	d, _, err := DTW(a, b, &opts)

	return d, err
}

// validate checks option invariants before any allocation.
func validate(o Options) error {
	if o.Window < 0 {
		return ErrBadWindow
	}
	if !o.Metric.Valid() {
		return fmt.Errorf("dtw: %w: %s", metric.ErrUnknownMetric, o.Metric)
	}
	switch o.MemoryMode {
	case FullMatrix:
	case RollingArray:
		if o.ReturnPath {
			return ErrPathNeedsFullMatrix
		}
	default:
		return ErrBadMemoryMode
	}

	return nil
}

// band returns the inclusive column range evaluated on row i.
func band(i, m, w int) (lo, hi int) {
	return max(1, i-w), min(m, i+w)
}

// fullTable fills the whole (n+1)x(m+1) table.
func fullTable(a, b []int64, kind metric.Kind, w int) [][]int64 {
	n, m := len(a), len(b)
	dp := make([][]int64, n+1)
	for i := range dp {
		row := make([]int64, m+1)
		for j := range row {
			row[j] = metric.Inf
		}
		dp[i] = row
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := band(i, m, w)
		for j := lo; j <= hi; j++ {
			best := min3(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
			dp[i][j] = metric.AddSat(kind.Cost(a[i-1], b[j-1]), best)
		}
	}

	return dp
}

// rolling computes D[n][m] keeping only two rows laid over the shorter input.
//
// Band edges only move right as i grows, so a reused row buffer needs just
// its column lo-1 reset: older stale cells sit left of anything read later.
func rolling(a, b []int64, kind metric.Kind, w int) int64 {
	if len(b) > len(a) {
		a, b = b, a
	}
	n, m := len(a), len(b)

	prev := make([]int64, m+1)
	curr := make([]int64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = metric.Inf
		curr[j] = metric.Inf
	}
	prev[0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := band(i, m, w)
		curr[0] = metric.Inf
		curr[lo-1] = metric.Inf
		ai := a[i-1]
		for j := lo; j <= hi; j++ {
			best := min3(prev[j], curr[j-1], prev[j-1])
			curr[j] = metric.AddSat(kind.Cost(ai, b[j-1]), best)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n,m) to (1,1) along the cheapest predecessors and
// returns the 0-based path in forward order. dp[n][m] must be finite.
func backtrack(dp [][]int64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j], dp[i][j-1]
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three int64 values.
func min3(a, b, c int64) int64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
