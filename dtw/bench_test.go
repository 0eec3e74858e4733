package dtw_test

import (
	"testing"

	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/metric"
)

// benchmarkDTW is a helper that runs DTW on sequences of lengths n and m using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	a := make([]int64, n)
	bSeq := make([]int64, m)
	for i := 0; i < n; i++ {
		a[i] = int64(i % 97)
	}
	for j := 0; j < m; j++ {
		bSeq[j] = int64((j * 7) % 97)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(a, bSeq, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrixMedium benchmarks FullMatrix mode on 500×500 sequences, unbanded.
func BenchmarkDTW_FullMatrixMedium(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.Options{Window: 500, Metric: metric.L1, MemoryMode: dtw.FullMatrix})
}

// BenchmarkDTW_RollingMedium benchmarks RollingArray mode on 500×500 sequences, unbanded.
func BenchmarkDTW_RollingMedium(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.Options{Window: 500, Metric: metric.L1, MemoryMode: dtw.RollingArray})
}

// BenchmarkDTW_RollingBanded benchmarks the worker configuration: tight band on long traces.
func BenchmarkDTW_RollingBanded(b *testing.B) {
	benchmarkDTW(b, 2000, 2000, dtw.Options{Window: 20, Metric: metric.Euclidean, MemoryMode: dtw.RollingArray})
}

// BenchmarkDTW_RollingMismatch benchmarks an auto-widened band on unequal lengths.
func BenchmarkDTW_RollingMismatch(b *testing.B) {
	benchmarkDTW(b, 1000, 900, dtw.Options{Window: 0, Metric: metric.L1, MemoryMode: dtw.RollingArray})
}
