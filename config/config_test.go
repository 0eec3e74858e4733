package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dtwconn/dtw"
	"github.com/katalvlaran/dtwconn/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "L1", cfg.Metric)
	assert.Equal(t, "rolling", cfg.MemoryMode)
	assert.Equal(t, 100, cfg.ProgressEvery)
	assert.True(t, cfg.WritePartials)

	cfg.Input = "x.txt"
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeYAML(t, `
input: data/sub01.txt
outputPrefix: out/sub01_
dataset: sub01
normalization: zscore
metric: euclidean
window: 12
workers: 2
breakpoints: [0, 40, 360]
memoryMode: full
writePartials: false
logLevel: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data/sub01.txt", cfg.Input)
	assert.Equal(t, "out/sub01_", cfg.OutputPrefix)
	assert.Equal(t, metric.Euclidean, cfg.MetricKind())
	assert.Equal(t, 12, cfg.Window)
	assert.Equal(t, []int{0, 40, 360}, cfg.Breakpoints)
	assert.False(t, cfg.WritePartials)
	assert.Equal(t, 100, cfg.ProgressEvery, "unset fields keep defaults")
	assert.Equal(t, 2, cfg.ResolveWorkers())

	mode, err := ParseMemoryMode(cfg.MemoryMode)
	require.NoError(t, err)
	assert.Equal(t, dtw.FullMatrix, mode)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeYAML(t, "window: [1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Default()
	base.Input = "in.txt"

	cases := map[string]func(c *Config){
		"no input":        func(c *Config) { c.Input = "" },
		"unknown metric":  func(c *Config) { c.Metric = "cosine" },
		"negative window": func(c *Config) { c.Window = -1 },
		"negative pool":   func(c *Config) { c.Workers = -2 },
		"breakpoints":     func(c *Config) { c.Workers = 3; c.Breakpoints = []int{0, 5} },
		"memory mode":     func(c *Config) { c.MemoryMode = "disk" },
		"progress":        func(c *Config) { c.ProgressEvery = -1 },
		"log level":       func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	cfg := Default()
	assert.Equal(t, CPUCount(), cfg.ResolveWorkers())
	assert.Positive(t, CPUCount())

	cfg.Workers = 5
	assert.Equal(t, 5, cfg.ResolveWorkers())
}

// TestConfig_YAMLRoundTrip ensures yaml tags match the documented keys.
func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Input = "in.txt"
	cfg.MetricsFile = "run.prom"

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "outputPrefix: ./")
	assert.Contains(t, string(data), "metricsFile: run.prom")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cfg, back)
}
