// Package dtw computes banded Dynamic Time Warping (DTW) distances between
// integer time series.
//
// 🚀 What is DTW?
//
//	DTW finds the cheapest alignment between two sequences by locally
//	stretching or compressing the time axis. Here it is used to build
//	connectivity matrices over many per-region activity traces, but the
//	kernel is generic:
//	  • brain-region time series (fMRI / EEG traces)
//	  • sensor and telemetry streams sampled at integer resolution
//	  • any fixed-point signal where pairwise similarity matters
//
// ✨ Key features:
//   - Sakoe–Chiba band (|i−j| ≤ w') bounding work to O(n·w')
//   - automatic band enlargement w' = max(w, |n−m|) so an end-to-end path
//     always exists
//   - full-matrix mode: O(n·m) memory, optional warp path
//   - rolling mode: two rows over the shorter sequence, O(min(n,m)) memory
//   - closed metric set from package metric (L1, squared Euclidean)
//   - saturating int64 arithmetic; metric.Inf marks unreachable cells
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dtwconn/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10              // band ±10 (enlarged to |n−m| if needed)
//	opts.Metric = metric.Euclidean
//
//	dist, _, err := dtw.DTW(a, b, &opts)
//
// Empty input policy:
//
//   - both sequences empty → distance 0, no error
//   - exactly one empty    → metric.Inf and ErrEmptySequence
//
// Performance:
//
//   - Time:   O(n·w') with w' the effective band, O(n·m) worst case
//   - Memory: O(n·m) (FullMatrix) or O(min(n,m)) (RollingArray)
package dtw
