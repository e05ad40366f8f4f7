package tasks

import (
	"sync/atomic"

	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// DataLogger drains its sensor queue. It stores nothing.
type DataLogger struct {
	In  ports.Queue[domain.SensorSample]
	Obs ports.Observability

	received atomic.Uint64
}

func (l *DataLogger) Step() domain.SensorSample {
	s := l.In.Receive()
	l.received.Add(1)
	l.Obs.IncCounter(observability.SamplesLogged, 1)
	return s
}

// Received reports how many samples the logger has drained.
func (l *DataLogger) Received() uint64 { return l.received.Load() }

func (l *DataLogger) Run() {
	for {
		l.Step()
	}
}
