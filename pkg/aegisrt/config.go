package aegisrt

import (
	"github.com/ghalamif/AegisRT/internal/app/config"
)

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// PipelineConfig holds tick, seed, fan-out and alert threshold.
	PipelineConfig = config.PipelineConfig
	// QueueConfig sets the queue capacities.
	QueueConfig = config.QueueConfig
	// PeriodConfig sets task periods in ticks.
	PeriodConfig = config.PeriodConfig
	// MetricsConfig configures the metrics HTTP server.
	MetricsConfig = config.MetricsConfig
	// LogConfig sets the diagnostic log level.
	LogConfig = config.LogConfig
)

const (
	FanoutBroadcast = config.FanoutBroadcast
	FanoutCompete   = config.FanoutCompete
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return config.Default()
}
