// Package pipeline is the entry point of a connectivity run: it fans the
// pairwise DTW workload out over a static row partition, waits for every
// worker, merges the partial results in partition order and persists the
// unified artifact.
//
// Everything a run needs is passed in explicitly through Params; there is no
// package-level state.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/dtwconn/config"
	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/internal/logging"
	"github.com/katalvlaran/dtwconn/internal/metrics"
	"github.com/katalvlaran/dtwconn/merge"
	"github.com/katalvlaran/dtwconn/metric"
	"github.com/katalvlaran/dtwconn/pairwise"
	"github.com/katalvlaran/dtwconn/partition"
	"github.com/katalvlaran/dtwconn/series"
)

// ErrNoSeries indicates Params without a series collection.
var ErrNoSeries = errors.New("pipeline: no series collection")

// Params fully describes one run.
type Params struct {
	Series      *series.Collection
	Metric      metric.Kind
	Window      int
	MemoryMode  dtw.MemoryMode
	Breakpoints partition.Breakpoints

	// OutputPrefix, Dataset and Normalization only shape artifact names.
	OutputPrefix  string
	Dataset       string
	Normalization string

	// WritePartials persists one artifact per range plus a manifest.
	WritePartials bool

	ProgressEvery int
}

// Report summarizes a finished run.
type Report struct {
	UnifiedPath string
	Checksum    uint64
	Manifest    *merge.Manifest
	Series      int
	Comparisons int64
	Unreachable int
	Elapsed     time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the metrics collector shared with the workers.
func WithMetrics(c metrics.Collector) Option {
	return func(p *Pipeline) {
		if c != nil {
			p.metrics = c
		}
	}
}

// Pipeline runs connectivity computations.
type Pipeline struct {
	logger  logging.Logger
	metrics metrics.Collector
}

// New builds a Pipeline; without options it logs and measures nothing.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: logging.NewNop(), metrics: metrics.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run computes, merges and persists the distance matrix described by params.
//
// Stages:
//  1. Validate: collection present, partition covers [0, N).
//  2. Compute: one worker per range; blocks until all have finished.
//  3. Persist partials (optional): one artifact per range and a manifest.
//     A failed write fails that range.
//  4. Merge: only when every range succeeded; otherwise the returned error
//     lists each failed range and no unified artifact is written.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Report, error) {
	start := time.Now()
	if params.Series == nil {
		return nil, ErrNoSeries
	}
	n := params.Series.Len()
	if err := params.Breakpoints.Validate(n); err != nil {
		return nil, err
	}
	ranges := params.Breakpoints.Ranges()

	p.logger.Info("run started",
		"series", n,
		"comparisons", params.Series.Comparisons(),
		"workers", len(ranges),
		"metric", params.Metric.String(),
		"window", params.Window)

	pool := pairwise.NewPool(pairwise.Config{
		Metric:        params.Metric,
		Window:        params.Window,
		MemoryMode:    params.MemoryMode,
		ProgressEvery: params.ProgressEvery,
	}, pairwise.WithLogger(p.logger), pairwise.WithMetrics(p.metrics))

	parts, workErr := pool.Run(ctx, params.Series, params.Breakpoints)
	if parts == nil && workErr != nil {
		// configuration rejected before any worker started
		return nil, workErr
	}

	mergeStart := time.Now()
	report := &Report{Series: n}

	if params.WritePartials {
		manifest, writeErr := p.persistPartials(params, parts)
		report.Manifest = manifest
		workErr = errors.Join(workErr, writeErr)
	}

	m, err := merge.Concat(ranges, parts)
	if err != nil {
		p.logger.Error("merge aborted", "error", err)

		return report, errors.Join(err, workErr)
	}

	out := merge.UnifiedName(params.OutputPrefix, params.Dataset, params.Normalization, params.Metric, params.Window)
	sum, err := merge.WriteUnified(out, m)
	if err != nil {
		return report, err
	}
	p.metrics.ObserveMergeDuration(time.Since(mergeStart).Seconds())

	report.UnifiedPath = out
	report.Checksum = sum
	report.Comparisons = params.Series.Comparisons()
	report.Unreachable = m.Count(metric.Inf)
	report.Elapsed = time.Since(start)

	if report.Unreachable > 0 {
		p.logger.Warn("unreachable distances in result", "count", report.Unreachable)
	}
	p.logger.Info("run finished",
		"output", out,
		"xxh3", fmt.Sprintf("%016x", sum),
		"elapsed", report.Elapsed.String())

	// only a manifest write can have failed at this point
	return report, workErr
}

// persistPartials writes every successful part and the manifest. A part
// whose write fails is dropped from parts so the merge reports its range.
func (p *Pipeline) persistPartials(params Params, parts []*pairwise.PartialResult) (*merge.Manifest, error) {
	manifest := &merge.Manifest{
		Series: params.Series.Len(),
		Metric: params.Metric.String(),
		Window: params.Window,
	}

	var errs []error
	for k, part := range parts {
		if part == nil {
			continue
		}
		a, err := merge.WritePartial(params.OutputPrefix, part)
		if err != nil {
			p.logger.Error("partial write failed", "worker", k, "range", part.Range.String(), "error", err)
			p.metrics.IncWorkerFailure()
			errs = append(errs, &pairwise.RangeError{Worker: k, Range: part.Range, Err: err})
			parts[k] = nil

			continue
		}
		manifest.Artifacts = append(manifest.Artifacts, a)
	}

	if err := merge.WriteManifest(merge.ManifestName(params.OutputPrefix), manifest); err != nil {
		errs = append(errs, err)
	}

	return manifest, errors.Join(errs...)
}

// ParamsFromConfig turns a validated configuration and its loaded series
// into run parameters, computing a balanced partition when none is given.
func ParamsFromConfig(cfg *config.Config, coll *series.Collection) (Params, error) {
	mode, err := config.ParseMemoryMode(cfg.MemoryMode)
	if err != nil {
		return Params{}, err
	}

	bps := partition.Breakpoints(cfg.Breakpoints)
	if len(bps) == 0 {
		bps, err = partition.Balanced(coll.Len(), cfg.ResolveWorkers())
		if err != nil {
			return Params{}, err
		}
	}
	if err := bps.Validate(coll.Len()); err != nil {
		return Params{}, err
	}

	return Params{
		Series:        coll,
		Metric:        cfg.MetricKind(),
		Window:        cfg.Window,
		MemoryMode:    mode,
		Breakpoints:   bps,
		OutputPrefix:  cfg.OutputPrefix,
		Dataset:       cfg.Dataset,
		Normalization: cfg.Normalization,
		WritePartials: cfg.WritePartials,
		ProgressEvery: cfg.ProgressEvery,
	}, nil
}
