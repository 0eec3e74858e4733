package pairwise

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/dtwconn/internal/logging"
	"github.com/katalvlaran/dtwconn/internal/metrics"
	"github.com/katalvlaran/dtwconn/partition"
	"github.com/katalvlaran/dtwconn/series"
)

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger used for progress and failures.
func WithLogger(l logging.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(c metrics.Collector) Option {
	return func(p *Pool) {
		if c != nil {
			p.metrics = c
		}
	}
}

// Pool runs one worker per partition range.
type Pool struct {
	cfg     Config
	logger  logging.Logger
	metrics metrics.Collector
}

// NewPool builds a pool for the given comparison settings.
func NewPool(cfg Config, opts ...Option) *Pool {
	p := &Pool{cfg: cfg, logger: logging.NewNop(), metrics: metrics.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// outcome is what one worker sends back to Run.
type outcome struct {
	k   int
	res *PartialResult
	err error
}

// Run computes every range of bps over coll concurrently and returns the
// partial results in partition order.
//
// Run returns only after every worker has finished. Results of failed ranges
// are nil; the returned error then joins one *RangeError per failed range.
func (p *Pool) Run(ctx context.Context, coll *series.Collection, bps partition.Breakpoints) ([]*PartialResult, error) {
	cfg := p.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := bps.Validate(coll.Len()); err != nil {
		return nil, err
	}

	ranges := bps.Ranges()
	done := make(chan outcome, len(ranges))
	for k, r := range ranges {
		go func(k int, r partition.Range) {
			start := time.Now()
			res, err := NewWorker(k, coll, cfg, p.logger, p.metrics).Compute(ctx, r)
			p.metrics.ObserveWorkerDuration(time.Since(start).Seconds())
			done <- outcome{k: k, res: res, err: err}
		}(k, r)
	}

	results := make([]*PartialResult, len(ranges))
	errs := make([]error, len(ranges))
	for range ranges {
		o := <-done
		if o.err != nil {
			errs[o.k] = &RangeError{Worker: o.k, Range: ranges[o.k], Err: o.err}
			p.metrics.IncWorkerFailure()
			p.logger.Error("worker failed", "worker", o.k, "range", ranges[o.k].String(), "error", o.err)

			continue
		}
		results[o.k] = o.res
		p.logger.Debug("worker finished", "worker", o.k, "range", ranges[o.k].String(), "comparisons", o.res.Comparisons())
	}

	return results, errors.Join(errs...)
}

// Failed extracts the ranges of every *RangeError joined in err, in
// partition order as produced by Run.
func Failed(err error) []partition.Range {
	if err == nil {
		return nil
	}
	var out []partition.Range
	var re *RangeError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if errors.As(e, &re) {
				out = append(out, re.Range)
			}
		}

		return out
	}
	if errors.As(err, &re) {
		out = append(out, re.Range)
	}

	return out
}
