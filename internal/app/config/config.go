package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Sensor fan-out modes.
const (
	// FanoutBroadcast gives the stats processor and the data logger their own
	// queue; every sample is sent to both.
	FanoutBroadcast = "broadcast"
	// FanoutCompete has both consumers receive from one shared queue, so each
	// sample reaches exactly one of them.
	FanoutCompete = "compete"
)

type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Queues   QueueConfig    `yaml:"queues"`
	Periods  PeriodConfig   `yaml:"periods"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Log      LogConfig      `yaml:"log"`
}

type PipelineConfig struct {
	Tick           time.Duration `yaml:"tick"`
	Seed           uint16        `yaml:"seed"`
	SensorFanout   string        `yaml:"sensor_fanout"`
	AlertThreshold int           `yaml:"alert_threshold"`
}

type QueueConfig struct {
	Sensor  int `yaml:"sensor"`
	Alert   int `yaml:"alert"`
	Command int `yaml:"command"`
}

// PeriodConfig holds task periods in ticks.
type PeriodConfig struct {
	Sensor  uint64 `yaml:"sensor"`
	Monitor uint64 `yaml:"monitor"`
	Command uint64 `yaml:"command"`
}

type MetricsConfig struct {
	// Addr is the listen address for /metrics; empty disables the server.
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pipeline.Tick == 0 {
		c.Pipeline.Tick = time.Second
	}
	if c.Pipeline.Seed == 0 {
		c.Pipeline.Seed = 0xACE1
	}
	if c.Pipeline.SensorFanout == "" {
		c.Pipeline.SensorFanout = FanoutBroadcast
	}
	if c.Pipeline.AlertThreshold == 0 {
		c.Pipeline.AlertThreshold = 50
	}
	if c.Queues.Sensor == 0 {
		c.Queues.Sensor = 10
	}
	if c.Queues.Alert == 0 {
		c.Queues.Alert = 5
	}
	if c.Queues.Command == 0 {
		c.Queues.Command = 5
	}
	if c.Periods.Sensor == 0 {
		c.Periods.Sensor = 1
	}
	if c.Periods.Monitor == 0 {
		c.Periods.Monitor = 3
	}
	if c.Periods.Command == 0 {
		c.Periods.Command = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Pipeline.Tick <= 0 {
		return fmt.Errorf("pipeline.tick must be > 0")
	}
	switch c.Pipeline.SensorFanout {
	case FanoutBroadcast, FanoutCompete:
	default:
		return fmt.Errorf("pipeline.sensor_fanout must be %q or %q, got %q",
			FanoutBroadcast, FanoutCompete, c.Pipeline.SensorFanout)
	}
	if c.Pipeline.AlertThreshold < 0 {
		return fmt.Errorf("pipeline.alert_threshold must be >= 0")
	}
	if c.Queues.Sensor <= 0 || c.Queues.Alert <= 0 || c.Queues.Command <= 0 {
		return fmt.Errorf("queue capacities must be > 0")
	}
	if c.Periods.Sensor == 0 || c.Periods.Monitor == 0 || c.Periods.Command == 0 {
		return fmt.Errorf("task periods must be >= 1 tick")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
