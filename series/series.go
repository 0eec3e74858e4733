// Package series holds the in-memory input of a connectivity run: an ordered,
// immutable collection of integer time series identified by their index.
//
// A Collection is built once and then shared by every pairwise worker without
// locks; nothing in this module mutates it after construction.
package series

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection indicates a collection with no series.
	ErrEmptyCollection = errors.New("series: collection is empty")

	// ErrEmptySeries indicates a series with no samples.
	ErrEmptySeries = errors.New("series: time series has no samples")

	// ErrParse indicates malformed input text.
	ErrParse = errors.New("series: malformed input")
)

// TimeSeries is an ordered sequence of integer samples.
type TimeSeries []int64

// Collection is an ordered, read-only set of N time series, indices 0..N-1.
type Collection struct {
	series []TimeSeries
}

// NewCollection validates and copies the given series.
//
// Every series must hold at least one sample, so that pairwise DTW never hits
// the empty-sequence case. Lengths may differ between series.
func NewCollection(series []TimeSeries) (*Collection, error) {
	if len(series) == 0 {
		return nil, ErrEmptyCollection
	}

	owned := make([]TimeSeries, len(series))
	for i, s := range series {
		if len(s) == 0 {
			return nil, fmt.Errorf("series %d: %w", i, ErrEmptySeries)
		}
		owned[i] = append(TimeSeries(nil), s...)
	}

	return &Collection{series: owned}, nil
}

// Len returns N, the number of series.
func (c *Collection) Len() int {
	return len(c.series)
}

// At returns series i. The returned slice is shared and must not be modified.
func (c *Collection) At(i int) TimeSeries {
	return c.series[i]
}

// Comparisons returns the number of pairwise DTW computations: N(N-1)/2.
func (c *Collection) Comparisons() int64 {
	n := int64(len(c.series))

	return n * (n - 1) / 2
}
