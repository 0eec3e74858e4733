package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/metric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_path
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The second trace repeats one sample.
//	  a = [1, 2, 3]
//	  b = [1, 2, 2, 3]
//
// Options:
//   - Window = 0         (auto-widened to |4−3| = 1)
//   - ReturnPath = true  (retrieve alignment path)
//   - MemoryMode = FullMatrix
//
// Complexity: O(N·w') time, O(N·M) memory
func ExampleDTW_path() {
	a := []int64{1, 2, 3}
	b := []int64{1, 2, 2, 3}
	opts := dtw.Options{Window: 0, Metric: metric.L1, ReturnPath: true, MemoryMode: dtw.FullMatrix}

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%d\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_euclidean
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Constant offset between two flat traces; squared costs accumulate and
//	metric.Sqrt turns the sum into a Euclidean-style distance.
//	  a = [0, 0, 0, 0]
//	  b = [3, 3, 3, 3]
//
// Complexity: O(N·w') time, O(min(N,M)) memory
func ExampleDTW_euclidean() {
	a := []int64{0, 0, 0, 0}
	b := []int64{3, 3, 3, 3}
	opts := dtw.DefaultOptions()
	opts.Window = 2
	opts.Metric = metric.Euclidean

	sum, _, _ := dtw.DTW(a, b, &opts)
	fmt.Printf("sum=%d distance=%.0f\n", sum, metric.Sqrt(sum))
	// Output:
	// sum=36 distance=6
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Distance-only call as issued by the pairwise workers.
//	  a = [0, 0, 0]
//	  b = [5, 5, 5]
func ExampleDistance() {
	d, err := dtw.Distance([]int64{0, 0, 0}, []int64{5, 5, 5}, metric.L1, 2)
	fmt.Println(d, err)
	// Output:
	// 15 <nil>
}
