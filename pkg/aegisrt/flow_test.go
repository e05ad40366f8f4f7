package aegisrt

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghalamif/AegisRT/internal/adapters/clock"
	"github.com/ghalamif/AegisRT/internal/ports"
)

func TestConfFromConfigAndStreamBuilder(t *testing.T) {
	cfg := testConfig()

	flow, err := ConfFromConfig(cfg)
	if err != nil {
		t.Fatalf("ConfFromConfig returned error: %v", err)
	}
	if flow.Config() != cfg {
		t.Fatalf("expected Config to be returned verbatim")
	}

	ticks := clock.NewTicks()
	obs := &stubObservability{}

	rt, err := flow.
		StreamIN(
			StreamInClock(ticks),
			StreamInSeed(0xBEEF),
		).
		StreamOUT(
			StreamOutWriter(io.Discard),
			StreamOutObservability(obs),
		)
	if err != nil {
		t.Fatalf("StreamOUT returned error: %v", err)
	}
	if rt.clock != ticks {
		t.Fatalf("expected custom clock to be wired")
	}
	if rt.ticks != nil {
		t.Fatalf("runtime must not own an injected clock")
	}
	if rt.obs != obs {
		t.Fatalf("expected custom observability to be wired")
	}
	if cfg.Pipeline.Seed != 0xBEEF {
		t.Fatalf("expected seed override, got %#x", cfg.Pipeline.Seed)
	}
}

func TestConfLoadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aegis.yaml")
	body := "pipeline:\n  sensor_fanout: compete\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flow, err := Conf(path, WithFlowOptions(WithObservability(&stubObservability{})))
	if err != nil {
		t.Fatalf("Conf returned error: %v", err)
	}
	if flow.Config().Pipeline.SensorFanout != FanoutCompete {
		t.Fatalf("expected compete fanout from file")
	}
	rt, err := flow.Options(WithOutput(io.Discard)).StreamOUT()
	if err != nil {
		t.Fatalf("StreamOUT returned error: %v", err)
	}
	if rt.queues.logger != rt.queues.sensor {
		t.Fatalf("expected shared sensor queue")
	}

	if _, err := Conf(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestFlowRunStopsOnCancel(t *testing.T) {
	flow, err := ConfFromConfig(testConfig())
	if err != nil {
		t.Fatalf("ConfFromConfig returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := flow.StreamIN(
		StreamInClock(clock.NewTicks()),
	).Run(ctx,
		StreamOutWriter(io.Discard),
		StreamOutObservability(&stubObservability{}),
	); err != nil {
		t.Fatalf("Run returned unexpected error: %v", err)
	}
}

func TestNilFlow(t *testing.T) {
	var f *Flow
	if f.Config() != nil || f.StreamIN() != nil || f.Options() != nil {
		t.Fatalf("nil flow must stay nil")
	}
	if _, err := f.StreamOUT(); err == nil {
		t.Fatalf("expected error from nil flow")
	}
	if _, err := ConfFromConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

type stubObservability struct{}

func (stubObservability) LogInfo(string, ...ports.Field)        {}
func (stubObservability) LogError(string, error, ...ports.Field) {}
func (stubObservability) IncCounter(string, float64)            {}
func (stubObservability) ObserveLatency(string, float64)        {}
func (stubObservability) SetGauge(string, float64)              {}
