// Package config provides environment-based configuration for the
// workspace. Values load from environment variables with sensible
// defaults; CLI flags in main may override them.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Tick    TickConfig
	Logging LogConfig
	Metrics MetricsConfig
}

// TickConfig holds the scheduler cycle settings.
type TickConfig struct {
	IntervalMS int `envconfig:"QD_TICK_MS" default:"50"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `envconfig:"QD_LOG_LEVEL" default:"info"`
	Path  string `envconfig:"QD_LOG_FILE" default:""`
}

// MetricsConfig holds the optional Prometheus listener configuration.
// An empty address disables the listener.
type MetricsConfig struct {
	Addr string `envconfig:"QD_METRICS_ADDR" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Tick: TickConfig{
			IntervalMS: 50,
		},
		Logging: LogConfig{
			Level: "info",
			Path:  "",
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
	}
}
