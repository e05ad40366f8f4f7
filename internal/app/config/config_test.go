package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
queues:
  sensor: 32
metrics:
  addr: ":9100"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Queues.Sensor != 32 {
		t.Fatalf("expected sensor queue 32, got %d", cfg.Queues.Sensor)
	}
	if cfg.Queues.Alert != 5 || cfg.Queues.Command != 5 {
		t.Fatalf("expected alert/command queue defaults 5/5, got %d/%d", cfg.Queues.Alert, cfg.Queues.Command)
	}
	if cfg.Pipeline.Tick != time.Second {
		t.Fatalf("expected default tick 1s, got %s", cfg.Pipeline.Tick)
	}
	if cfg.Pipeline.Seed != 0xACE1 {
		t.Fatalf("expected default seed 0xACE1, got %#x", cfg.Pipeline.Seed)
	}
	if cfg.Pipeline.SensorFanout != FanoutBroadcast {
		t.Fatalf("expected default fanout broadcast, got %s", cfg.Pipeline.SensorFanout)
	}
	if cfg.Periods.Sensor != 1 || cfg.Periods.Monitor != 3 || cfg.Periods.Command != 5 {
		t.Fatalf("unexpected default periods %+v", cfg.Periods)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Fatalf("expected metrics addr :9100, got %s", cfg.Metrics.Addr)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  tick: 10ms
  seed: 0xBEEF
  sensor_fanout: compete
  alert_threshold: 20
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Pipeline.Tick != 10*time.Millisecond {
		t.Fatalf("expected tick 10ms, got %s", cfg.Pipeline.Tick)
	}
	if cfg.Pipeline.Seed != 0xBEEF {
		t.Fatalf("expected seed 0xBEEF, got %#x", cfg.Pipeline.Seed)
	}
	if cfg.Pipeline.SensorFanout != FanoutCompete {
		t.Fatalf("expected compete fanout, got %s", cfg.Pipeline.SensorFanout)
	}
	if cfg.Pipeline.AlertThreshold != 20 {
		t.Fatalf("expected threshold 20, got %d", cfg.Pipeline.AlertThreshold)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"fanout":   "pipeline:\n  sensor_fanout: multicast\n",
		"queue":    "queues:\n  alert: -1\n",
		"loglevel": "log:\n  level: chatty\n",
		"tick":     "pipeline:\n  tick: -1s\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "pipeline: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Metrics.Addr != "" {
		t.Fatalf("expected metrics disabled by default, got %q", cfg.Metrics.Addr)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
