// Package partition splits the rows of the upper-triangular distance matrix
// into contiguous, disjoint ranges, one per worker.
//
// Row i of an N-series matrix carries N-1-i comparisons, so the workload is
// triangular and front-loaded. Balanced places breakpoints so every range
// carries about the same number of comparisons, not the same number of rows.
// Once computed, a partition is static: nothing rebalances it at run time.
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrBadBreakpoints indicates a breakpoint sequence violating the
	// partition invariants (length, endpoints, ordering).
	ErrBadBreakpoints = errors.New("partition: invalid breakpoints")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("partition: worker count must be > 0")

	// ErrBadSize indicates a negative series count.
	ErrBadSize = errors.New("partition: series count must be >= 0")
)

// Range is a half-open row interval [Begin, End).
type Range struct {
	Begin int
	End   int
}

// Len returns the number of rows in r.
func (r Range) Len() int {
	return r.End - r.Begin
}

// Comparisons returns how many pairwise distances rows of r compute in an
// n-series matrix.
func (r Range) Comparisons(n int) int64 {
	return cumulative(r.End, n) - cumulative(r.Begin, n)
}

// String formats r as "[begin,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Begin, r.End)
}

// Breakpoints is an ordered sequence of row indices of length workers+1:
// first element 0, last element N, non-decreasing. Worker k owns
// [b[k], b[k+1]).
type Breakpoints []int

// Validate checks the breakpoint invariants against a collection of n series.
func (b Breakpoints) Validate(n int) error {
	if len(b) < 2 {
		return fmt.Errorf("%w: need at least 2 entries, got %d", ErrBadBreakpoints, len(b))
	}
	if b[0] != 0 {
		return fmt.Errorf("%w: first entry must be 0, got %d", ErrBadBreakpoints, b[0])
	}
	if last := b[len(b)-1]; last != n {
		return fmt.Errorf("%w: last entry must be %d, got %d", ErrBadBreakpoints, n, last)
	}
	for k := 1; k < len(b); k++ {
		if b[k] < b[k-1] {
			return fmt.Errorf("%w: entry %d (%d) below entry %d (%d)", ErrBadBreakpoints, k, b[k], k-1, b[k-1])
		}
	}

	return nil
}

// Workers returns the number of ranges described by b.
func (b Breakpoints) Workers() int {
	if len(b) == 0 {
		return 0
	}

	return len(b) - 1
}

// Ranges expands b into its ranges, in ascending order. Empty ranges are kept
// so that range k always belongs to worker k.
func (b Breakpoints) Ranges() []Range {
	if len(b) < 2 {
		return nil
	}
	out := make([]Range, len(b)-1)
	for k := range out {
		out[k] = Range{Begin: b[k], End: b[k+1]}
	}

	return out
}

// Balanced computes breakpoints for n series over the given number of workers
// so that each range carries about T/workers comparisons, T = n(n-1)/2.
//
// Cumulative comparisons before row r:
//
//	C(r) = r(n-1) - r(r-1)/2
//
// Breakpoint t is the smallest r with C(r) >= t·T/workers.
// Complexity: O(n + workers).
func Balanced(n, workers int) (Breakpoints, error) {
	if workers <= 0 {
		return nil, ErrBadWorkers
	}
	if n < 0 {
		return nil, ErrBadSize
	}

	total := cumulative(n, n)
	b := make(Breakpoints, workers+1)
	r := 0
	for t := 1; t < workers; t++ {
		target := total * int64(t) / int64(workers)
		for r < n && cumulative(r, n) < target {
			r++
		}
		b[t] = r
	}
	b[workers] = n

	return b, nil
}

// cumulative returns C(r), the comparisons carried by rows [0, r).
func cumulative(r, n int) int64 {
	rr, nn := int64(r), int64(n)

	return rr*(nn-1) - rr*(rr-1)/2
}
