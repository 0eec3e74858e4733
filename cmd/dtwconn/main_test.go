package main

import (
	"testing"

	"github.com/katalvlaran/dtwconn/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Breakpoints = []int{0, 2, 4}
	cfg.Workers = 2

	applyOverrides(&cfg, "in.txt", "out/", "euclidean", "sub", "z", 7, 4)
	assert.Equal(t, "in.txt", cfg.Input)
	assert.Equal(t, "out/", cfg.OutputPrefix)
	assert.Equal(t, "euclidean", cfg.Metric)
	assert.Equal(t, "sub", cfg.Dataset)
	assert.Equal(t, "z", cfg.Normalization)
	assert.Equal(t, 7, cfg.Window)
	assert.Equal(t, 4, cfg.Workers)
	assert.Nil(t, cfg.Breakpoints, "explicit worker count drops fixed breakpoints")
}

func TestApplyOverrides_Unset(t *testing.T) {
	cfg := config.Default()
	want := cfg

	applyOverrides(&cfg, "", "", "", "", "", -1, -1)
	assert.Equal(t, want, cfg)
}
