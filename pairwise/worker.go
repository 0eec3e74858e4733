package pairwise

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/internal/logging"
	"github.com/katalvlaran/dtwconn/internal/metrics"
	"github.com/katalvlaran/dtwconn/metric"
	"github.com/katalvlaran/dtwconn/partition"
	"github.com/katalvlaran/dtwconn/series"
)

// Worker computes the rows of one partition range.
type Worker struct {
	id      int
	coll    *series.Collection
	cfg     Config
	logger  logging.Logger
	metrics metrics.Collector
}

// NewWorker builds a worker. cfg must already be validated.
func NewWorker(id int, coll *series.Collection, cfg Config, logger logging.Logger, mc metrics.Collector) *Worker {
	if logger == nil {
		logger = logging.NewNop()
	}
	if mc == nil {
		mc = metrics.NewNop()
	}

	return &Worker{id: id, coll: coll, cfg: cfg, logger: logger, metrics: mc}
}

// Compute returns the distances of every row in r to every higher index.
// The context is checked between rows.
func (w *Worker) Compute(ctx context.Context, r partition.Range) (*PartialResult, error) {
	n := w.coll.Len()
	if r.Begin < 0 || r.End > n || r.End < r.Begin {
		return nil, fmt.Errorf("%w: %s with %d series", ErrBadRange, r, n)
	}

	every := w.cfg.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	out := &PartialResult{Range: r, Rows: make([][]int64, 0, r.Len())}
	for i := r.Begin; i < r.End; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := w.row(i, n)
		if err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, row)
		w.metrics.AddRows(w.id, 1)

		if done := i - r.Begin + 1; done%every == 0 {
			w.logger.Info("rows ready", "worker", w.id, "range", r.String(), "done", done, "total", r.Len())
		}
	}

	return out, nil
}

// row computes distances from series i to every series j > i.
func (w *Worker) row(i, n int) ([]int64, error) {
	a := w.coll.At(i)
	opts := w.cfg.options()
	row := make([]int64, n-1-i)
	unreachable := 0
	for j := i + 1; j < n; j++ {
		d, _, err := dtw.DTW(a, w.coll.At(j), &opts)
		if err != nil {
			return nil, fmt.Errorf("pair (%d,%d): %w", i, j, err)
		}
		if d == metric.Inf {
			unreachable++
		}
		row[j-i-1] = d
	}
	w.metrics.AddComparisons(w.id, len(row))
	if unreachable > 0 {
		w.metrics.AddUnreachable(unreachable)
	}

	return row, nil
}
