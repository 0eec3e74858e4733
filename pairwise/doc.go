// Package pairwise computes the upper triangle of the DTW distance matrix
// over a static row partition.
//
// Each Worker owns one contiguous row range [begin, end) and, for every row i
// in it, computes the DTW distance to every j > i. Row i therefore costs
// N-1-i comparisons; the partition is expected to balance that triangular
// load (see partition.Balanced), the pool never rebalances.
//
// Pool.Run starts one goroutine per range, shares the read-only series
// collection between them without locks and blocks until every worker has
// reported. Each worker returns its PartialResult as an owned value; nothing
// is written to disk here. A failed worker does not stop the others: its
// range comes back nil together with a *RangeError.
package pairwise
