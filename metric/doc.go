// Package metric defines the closed set of pointwise cost functions used by
// the DTW kernel.
//
// Supported kinds:
//
//   - L1        — |a − b|
//   - Euclidean — (a − b)², no square root is taken; apply Sqrt to the final
//     DTW sum when a true Euclidean-accumulated distance is wanted.
//
// A metric is resolved once, at configuration time, with Parse. Unknown names
// fail fast with ErrUnknownMetric instead of degrading every comparison.
//
// All costs are non-negative int64 values. Inf (math.MaxInt64) is the
// "unreachable" sentinel; arithmetic saturates at Inf instead of overflowing.
package metric
