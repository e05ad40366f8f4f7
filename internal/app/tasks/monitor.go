package tasks

import (
	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/app/sim"
	"github.com/ghalamif/AegisRT/internal/ports"
)

type SystemMonitor struct {
	RNG     *sim.LFSR
	Clock   ports.Clock
	Period  uint64
	Console ports.Console
	Obs     ports.Observability
}

func (m *SystemMonitor) Step() {
	tick := m.Clock.Now()
	d := sim.Diagnose(m.RNG)
	m.Console.Linef(monitorFormat, tick, d.HeapPercent, d.Errors)
	m.Obs.IncCounter(observability.MonitorReports, 1)
	m.Obs.SetGauge(observability.CurrentTick, float64(tick))
}

// Run waits one period before each report.
func (m *SystemMonitor) Run() {
	for {
		m.Clock.Sleep(m.Period)
		m.Step()
	}
}
