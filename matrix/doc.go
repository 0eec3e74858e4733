// SPDX-License-Identifier: MIT

// Package matrix provides the in-memory form of a DTW connectivity result:
// an upper-triangular N×N matrix of int64 distances.
//
// Only cells (i, j) with j > i are stored; row i holds N-1-i values in
// ascending column order. The diagonal is 0 and the lower triangle mirrors
// the upper one, so At answers any (i, j) in range. metric.Inf marks pairs
// with no admissible warping path.
//
// Memory: N(N-1)/2 int64 values.
package matrix
