package dtw

import "github.com/katalvlaran/dtwconn/metric"

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix   — keep the entire (n+1)x(m+1) table in memory.
//     Allows distance + backtrace of the optimal warping path.
//     Memory: O(n·m).
//
//   - RollingArray — only keep two rows (current and previous), laid out
//     over the shorter sequence. Memory: O(min(n, m)), no path recovery.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// RollingArray mode: keep only two rows, no path recovery, uses O(min(N,M)) memory.
	RollingArray
)

// String returns the configuration name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case RollingArray:
		return "rolling"
	default:
		return "unknown"
	}
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window     — requested band half-width w (>= 0). The kernel always uses
//     max(Window, |n−m|), see EffectiveWindow.
//   - Metric     — pointwise cost function (metric.L1 or metric.Euclidean).
//   - ReturnPath — if true, DTW backtracks and returns the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode — choose FullMatrix or RollingArray storage.
//
// Example:
//
//	opts := Options{
//	  Window:     4,
//	  Metric:     metric.L1,
//	  ReturnPath: true,
//	  MemoryMode: FullMatrix,
//	}
//
//	dist, path, err := DTW(seqA, seqB, &opts)
type Options struct {
	Window     int
	Metric     metric.Kind
	ReturnPath bool
	MemoryMode MemoryMode
}

// DefaultOptions returns the options used by the pairwise workers:
// diagonal band (auto-widened), L1 metric, rolling storage, no path.
func DefaultOptions() Options {
	return Options{
		Window:     0,
		Metric:     metric.L1,
		ReturnPath: false,
		MemoryMode: RollingArray,
	}
}

// Coord is one step of a warping path: element I of the first sequence is
// aligned with element J of the second (0-based).
type Coord struct {
	I, J int
}
