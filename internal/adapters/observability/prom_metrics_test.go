package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ghalamif/AegisRT/internal/ports"
)

func TestPromObsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewPromObs(reg, nil)
	if err != nil {
		t.Fatalf("new prom obs: %v", err)
	}

	obs.IncCounter(SamplesProduced, 5)
	if got := testutil.ToFloat64(obs.counters[SamplesProduced]); got != 5 {
		t.Fatalf("expected produced counter 5, got %f", got)
	}

	obs.IncCounter(AlertsRaised, 2)
	if got := testutil.ToFloat64(obs.counters[AlertsRaised]); got != 2 {
		t.Fatalf("expected alert counter 2, got %f", got)
	}

	obs.SetGauge(SensorQueueLength, 7)
	if got := testutil.ToFloat64(obs.gauges[SensorQueueLength]); got != 7 {
		t.Fatalf("expected sensor queue gauge 7, got %f", got)
	}

	obs.ObserveLatency(QueueSendWait, 0.5)
	hCollector := obs.histos[QueueSendWait].(prometheus.Collector)
	if samples := testutil.CollectAndCount(hCollector); samples != 1 {
		t.Fatalf("expected send wait histogram to record 1 sample, got %d", samples)
	}

	// Unknown names are ignored rather than panicking.
	obs.IncCounter("nope", 1)
	obs.SetGauge("nope", 1)
	obs.ObserveLatency("nope", 1)
}

func TestNewPromObsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromObs(reg, nil); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromObs(reg, nil); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestPromObsLogsStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	obs, err := NewPromObs(prometheus.NewRegistry(), logger)
	if err != nil {
		t.Fatalf("new prom obs: %v", err)
	}

	obs.LogInfo("task_started", ports.Field{Key: "task", Value: "SensorProducer"})
	obs.LogError("metrics_server_failed", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"level=info", "msg=task_started", "task=SensorProducer", "level=error", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "error")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	obs, _ := NewPromObs(prometheus.NewRegistry(), logger)
	obs.LogInfo("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	if _, err := NewLogger(&buf, "verbose"); err == nil {
		t.Fatalf("expected unknown level to fail")
	}
}
