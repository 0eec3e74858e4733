package metrics

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	rows            *prometheus.CounterVec
	comparisons     *prometheus.CounterVec
	unreachable     prometheus.Counter
	workerFailures  prometheus.Counter
	workerDurations prometheus.Histogram
	mergeDurations  prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements Collector.
var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to "dtwconn" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "dtwconn"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.rows = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "rows_total",
			Help:      "Matrix rows completed, by worker.",
		}, []string{"worker"})

		p.comparisons = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "comparisons_total",
			Help:      "Pairwise DTW computations completed, by worker.",
		}, []string{"worker"})

		p.unreachable = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "unreachable_total",
			Help:      "Distances equal to the unreachable sentinel.",
		})

		p.workerFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "failures_total",
			Help:      "Workers that finished with an error.",
		})

		p.workerDurations = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "worker",
			Name:      "duration_seconds",
			Help:      "Wall time of one worker over its row range.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		})

		p.mergeDurations = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "merge",
			Name:      "duration_seconds",
			Help:      "Wall time of merging and persisting partial results.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		})

		p.reg.MustRegister(
			p.rows,
			p.comparisons,
			p.unreachable,
			p.workerFailures,
			p.workerDurations,
			p.mergeDurations,
		)
	})
}

// AddRows increments the per-worker row counter.
func (p *PrometheusCollector) AddRows(worker, rows int) {
	p.ensureRegistered()
	p.rows.WithLabelValues(strconv.Itoa(worker)).Add(float64(rows))
}

// AddComparisons increments the per-worker comparison counter.
func (p *PrometheusCollector) AddComparisons(worker, n int) {
	p.ensureRegistered()
	p.comparisons.WithLabelValues(strconv.Itoa(worker)).Add(float64(n))
}

// AddUnreachable increments the unreachable-distance counter.
func (p *PrometheusCollector) AddUnreachable(n int) {
	p.ensureRegistered()
	p.unreachable.Add(float64(n))
}

// ObserveWorkerDuration records one worker's wall time.
func (p *PrometheusCollector) ObserveWorkerDuration(seconds float64) {
	p.ensureRegistered()
	p.workerDurations.Observe(seconds)
}

// IncWorkerFailure increments the failed-worker counter.
func (p *PrometheusCollector) IncWorkerFailure() {
	p.ensureRegistered()
	p.workerFailures.Inc()
}

// ObserveMergeDuration records the merge wall time.
func (p *PrometheusCollector) ObserveMergeDuration(seconds float64) {
	p.ensureRegistered()
	p.mergeDurations.Observe(seconds)
}

// WriteTextfile dumps everything gathered by g to path in the Prometheus
// text exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write textfile: %w", err)
	}

	return nil
}
