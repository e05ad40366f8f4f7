package tasks

import (
	"time"

	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/app/sim"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// SensorProducer synthesizes one sample per period and sends a copy to every
// output queue, blocking while any of them is full.
type SensorProducer struct {
	Sim     *sim.Simulator
	Outs    []ports.Queue[domain.SensorSample]
	Clock   ports.Clock
	Period  uint64
	Console ports.Console
	Obs     ports.Observability

	seq uint64
}

func (p *SensorProducer) Step() domain.SensorSample {
	p.seq++
	s := p.Sim.Sample(p.seq)

	for _, out := range p.Outs {
		start := time.Now()
		out.Send(s)
		p.Obs.ObserveLatency(observability.QueueSendWait, time.Since(start).Seconds())
	}
	p.Obs.IncCounter(observability.SamplesProduced, 1)

	p.Console.Linef(sensorLineFormat,
		s.Sequence,
		float64(s.Temperature)/10,
		float64(s.Humidity)/100,
		s.Light)
	return s
}

func (p *SensorProducer) Run() {
	for {
		p.Step()
		p.Clock.Sleep(p.Period)
	}
}
