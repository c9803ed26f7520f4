package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 50, cfg.Tick.IntervalMS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.Path)
	assert.Equal(t, "", cfg.Metrics.Addr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("QD_TICK_MS", "100")
	t.Setenv("QD_LOG_LEVEL", "debug")
	t.Setenv("QD_LOG_FILE", "/tmp/quaddesk.log")
	t.Setenv("QD_METRICS_ADDR", ":9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Tick.IntervalMS)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/quaddesk.log", cfg.Logging.Path)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("QD_TICK_MS", "not a number")
	cfg := LoadOrDefault()
	assert.Equal(t, 50, cfg.Tick.IntervalMS)
}
