// Command dtwconn computes the pairwise banded DTW distance matrix of a set
// of integer time series and writes it as a tab-separated upper triangle.
//
// Usage:
//
//	dtwconn -config run.yaml
//	dtwconn -input sub01.txt -out out/sub01_ -metric euclidean -window 10 -workers 8
//
// Flags override the corresponding fields of the configuration file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/dtwconn/config"
	"github.com/katalvlaran/dtwconn/internal/logging"
	"github.com/katalvlaran/dtwconn/internal/metrics"
	"github.com/katalvlaran/dtwconn/pipeline"
	"github.com/katalvlaran/dtwconn/series"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dtwconn:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Series file, one series per line (overrides config)")
	out := flag.String("out", "", "Output path prefix (overrides config)")
	metricName := flag.String("metric", "", "Distance metric: L1 or euclidean (overrides config)")
	window := flag.Int("window", -1, "DTW band half-width (overrides config when >= 0)")
	workers := flag.Int("workers", -1, "Worker count, 0 = logical CPUs (overrides config when >= 0)")
	dataset := flag.String("dataset", "", "Dataset tag for the unified file name (overrides config)")
	norm := flag.String("norm", "", "Normalization tag for the unified file name (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	applyOverrides(&cfg, *input, *out, *metricName, *dataset, *norm, *window, *workers)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewText(os.Stderr, level)

	coll, err := series.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	params, err := pipeline.ParamsFromConfig(&cfg, coll)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(metrics.NewPrometheus(reg, "")))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, runErr := p.Run(ctx, params)
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			logger.Error("metrics export failed", "path", cfg.MetricsFile, "error", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Println(report.UnifiedPath)

	return nil
}

// applyOverrides copies every flag that was set onto cfg.
func applyOverrides(cfg *config.Config, input, out, metricName, dataset, norm string, window, workers int) {
	if input != "" {
		cfg.Input = input
	}
	if out != "" {
		cfg.OutputPrefix = out
	}
	if metricName != "" {
		cfg.Metric = metricName
	}
	if dataset != "" {
		cfg.Dataset = dataset
	}
	if norm != "" {
		cfg.Normalization = norm
	}
	if window >= 0 {
		cfg.Window = window
	}
	if workers >= 0 {
		cfg.Workers = workers
		cfg.Breakpoints = nil
	}
}
