// Package dtwconn computes pairwise Dynamic Time Warping connectivity
// matrices over large collections of integer time series, such as
// per-region brain activity traces.
//
// 🚀 What does it do?
//
//	For N series it computes the N(N-1)/2 banded DTW distances of the upper
//	triangle, splits that triangular workload across a fixed pool of
//	workers using a static row partition, and reassembles the per-worker
//	partial results into one ordered, tab-separated artifact.
//
// Under the hood, everything is organized in subpackages:
//
//	metric/    — closed set of pointwise costs (L1, squared Euclidean)
//	dtw/       — banded DTW kernel, full-matrix and rolling storage
//	series/    — immutable series collection + text loader
//	partition/ — breakpoints, row ranges, comparison-balanced partitioning
//	pairwise/  — worker pool computing partial results per row range
//	matrix/    — in-memory upper-triangular distance matrix
//	merge/     — concatenation, partial/unified artifacts, manifests
//	pipeline/  — run entry point tying everything together
//	config/    — YAML run configuration
//	cmd/dtwconn — command-line front end
//
// Quick start:
//
//	coll, _ := series.LoadFile("sub01.txt")
//	bps, _ := partition.Balanced(coll.Len(), 8)
//	rep, err := pipeline.New().Run(ctx, pipeline.Params{
//		Series:      coll,
//		Metric:      metric.L1,
//		Window:      10,
//		MemoryMode:  dtw.RollingArray,
//		Breakpoints: bps,
//		OutputPrefix: "out/",
//	})
package dtwconn
