// Package config loads and validates the settings of a connectivity run.
//
// A run is described by a YAML document; command-line flags may override
// individual fields afterwards. Unknown metric names and invalid memory modes
// are rejected here, before any worker starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/internal/logging"
	"github.com/katalvlaran/dtwconn/metric"
	"github.com/katalvlaran/dtwconn/pairwise"
	"github.com/shirou/gopsutil/v3/cpu"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the configuration of one run.
type Config struct {
	// Input is the series file, one series per line.
	Input string `yaml:"input"`

	// OutputPrefix is prepended to every artifact name; it may contain a
	// directory ("out/sub01_").
	OutputPrefix string `yaml:"outputPrefix"`

	// Dataset and Normalization are descriptive tags used only in the unified
	// artifact name.
	Dataset       string `yaml:"dataset"`
	Normalization string `yaml:"normalization"`

	// Metric is "L1" or "euclidean".
	Metric string `yaml:"metric"`

	// Window is the requested DTW band half-width (>= 0).
	Window int `yaml:"window"`

	// Workers is the pool size. 0 means one worker per logical CPU.
	Workers int `yaml:"workers"`

	// Breakpoints optionally fixes the row partition (len Workers+1). When
	// empty it is computed with partition.Balanced.
	Breakpoints []int `yaml:"breakpoints,omitempty"`

	// MemoryMode is the DTW table storage: "rolling" (default) or "full".
	MemoryMode string `yaml:"memoryMode"`

	// ProgressEvery is the row cadence of worker progress logs.
	ProgressEvery int `yaml:"progressEvery"`

	// WritePartials persists one artifact per worker plus a manifest.
	WritePartials bool `yaml:"writePartials"`

	// MetricsFile, when set, receives a Prometheus text dump at the end.
	MetricsFile string `yaml:"metricsFile"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"logLevel"`
}

// Default returns a configuration with every optional field set.
func Default() Config {
	return Config{
		OutputPrefix:  "./",
		Metric:        metric.NameL1,
		Window:        0,
		Workers:       0,
		MemoryMode:    dtw.RollingArray.String(),
		ProgressEvery: pairwise.DefaultProgressEvery,
		WritePartials: true,
		LogLevel:      "info",
	}
}

// Load reads a YAML configuration from path on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks every field that can be checked without the input data.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is required", ErrInvalid)
	}
	if _, err := metric.Parse(c.Metric); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Window < 0 {
		return fmt.Errorf("%w: window must be >= 0, got %d", ErrInvalid, c.Window)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if n := len(c.Breakpoints); n > 0 && c.Workers > 0 && n != c.Workers+1 {
		return fmt.Errorf("%w: %d breakpoints for %d workers", ErrInvalid, n, c.Workers)
	}
	if _, err := ParseMemoryMode(c.MemoryMode); err != nil {
		return err
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progressEvery must be >= 0, got %d", ErrInvalid, c.ProgressEvery)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// MetricKind returns the parsed metric. Call after Validate.
func (c *Config) MetricKind() metric.Kind {
	k, _ := metric.Parse(c.Metric)

	return k
}

// ParseMemoryMode maps "rolling" and "full" to a dtw.MemoryMode; empty means
// rolling.
func ParseMemoryMode(s string) (dtw.MemoryMode, error) {
	switch s {
	case "", dtw.RollingArray.String():
		return dtw.RollingArray, nil
	case dtw.FullMatrix.String():
		return dtw.FullMatrix, nil
	default:
		return 0, fmt.Errorf("%w: unknown memoryMode %q", ErrInvalid, s)
	}
}

// ResolveWorkers returns the effective pool size: explicit Breakpoints win,
// then Workers, then the logical CPU count.
func (c *Config) ResolveWorkers() int {
	if len(c.Breakpoints) > 1 {
		return len(c.Breakpoints) - 1
	}
	if c.Workers > 0 {
		return c.Workers
	}

	return CPUCount()
}

// CPUCount returns the number of logical CPUs, falling back to
// runtime.NumCPU when the host cannot be queried.
func CPUCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}

	return runtime.NumCPU()
}
