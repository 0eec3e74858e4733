// Package metrics records run-level instrumentation for connectivity runs.
//
// Collector is consumed by the pairwise workers and the pipeline. Two
// implementations exist: NopMetrics (the default) and PrometheusCollector.
package metrics

// Collector receives progress and outcome signals. Implementations must be
// safe for concurrent use: every worker reports on its own goroutine.
type Collector interface {
	// AddRows records rows completed by a worker.
	AddRows(worker, rows int)

	// AddComparisons records pairwise DTW computations finished by a worker.
	AddComparisons(worker, n int)

	// AddUnreachable records distances that came out as the Inf sentinel.
	AddUnreachable(n int)

	// ObserveWorkerDuration records how long one worker ran, in seconds.
	ObserveWorkerDuration(seconds float64)

	// IncWorkerFailure records a worker that returned an error.
	IncWorkerFailure()

	// ObserveMergeDuration records how long the merge step took, in seconds.
	ObserveMergeDuration(seconds float64)
}
