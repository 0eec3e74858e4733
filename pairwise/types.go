package pairwise

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/metric"
	"github.com/katalvlaran/dtwconn/partition"
)

// DefaultProgressEvery is the row cadence of progress signals.
const DefaultProgressEvery = 100

var (
	// ErrBadConfig indicates an invalid worker configuration.
	ErrBadConfig = errors.New("pairwise: invalid configuration")

	// ErrBadRange indicates a row range outside [0, N] or with End < Begin.
	ErrBadRange = errors.New("pairwise: row range out of bounds")
)

// Config holds the per-comparison settings shared by all workers.
type Config struct {
	// Metric is the pointwise cost function.
	Metric metric.Kind

	// Window is the requested band half-width; see dtw.EffectiveWindow.
	Window int

	// MemoryMode selects the DTW table storage. The zero value is
	// dtw.FullMatrix; workers normally use dtw.RollingArray.
	MemoryMode dtw.MemoryMode

	// ProgressEvery is the row cadence of progress logs. <= 0 means
	// DefaultProgressEvery.
	ProgressEvery int
}

// options returns the kernel options for one comparison.
func (c *Config) options() dtw.Options {
	return dtw.Options{Window: c.Window, Metric: c.Metric, MemoryMode: c.MemoryMode}
}

// Validate checks c and fills defaults.
func (c *Config) Validate() error {
	if !c.Metric.Valid() {
		return fmt.Errorf("%w: %w", ErrBadConfig, metric.ErrUnknownMetric)
	}
	if c.Window < 0 {
		return fmt.Errorf("%w: window %d < 0", ErrBadConfig, c.Window)
	}
	if c.MemoryMode != dtw.FullMatrix && c.MemoryMode != dtw.RollingArray {
		return fmt.Errorf("%w: %w", ErrBadConfig, dtw.ErrBadMemoryMode)
	}
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = DefaultProgressEvery
	}

	return nil
}

// PartialResult is the slice of the distance matrix computed by one worker.
// Rows[k] holds the distances of row Range.Begin+k to every higher index, in
// ascending column order; the row of the last series is empty.
type PartialResult struct {
	Range partition.Range
	Rows  [][]int64
}

// Comparisons returns the number of distances held by p.
func (p *PartialResult) Comparisons() int {
	c := 0
	for _, r := range p.Rows {
		c += len(r)
	}

	return c
}

// RangeError reports the failure of the worker owning Range.
type RangeError struct {
	Worker int
	Range  partition.Range
	Err    error
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("pairwise: worker %d range %s: %v", e.Worker, e.Range, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RangeError) Unwrap() error {
	return e.Err
}
