package metrics

// NopMetrics implements a no-op metrics collector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements Collector.
var _ Collector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AddRows discards the row count.
func (n *NopMetrics) AddRows(_ /* worker */, _ /* rows */ int) {}

// AddComparisons discards the comparison count.
func (n *NopMetrics) AddComparisons(_ /* worker */, _ /* n */ int) {}

// AddUnreachable discards the unreachable count.
func (n *NopMetrics) AddUnreachable(_ int) {}

// ObserveWorkerDuration discards the duration.
func (n *NopMetrics) ObserveWorkerDuration(_ float64) {}

// IncWorkerFailure discards the failure.
func (n *NopMetrics) IncWorkerFailure() {}

// ObserveMergeDuration discards the duration.
func (n *NopMetrics) ObserveMergeDuration(_ float64) {}
