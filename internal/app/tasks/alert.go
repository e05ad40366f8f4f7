package tasks

import (
	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// AlertSink writes alerts as they arrive. Delivery is fire and forget.
type AlertSink struct {
	In      ports.Queue[domain.AlertMessage]
	Console ports.Console
	Obs     ports.Observability
}

func (a *AlertSink) Step() {
	msg := a.In.Receive()
	a.Console.Linef(alertFormat, msg.Text)
	a.Obs.IncCounter(observability.AlertsDelivered, 1)
}

func (a *AlertSink) Run() {
	for {
		a.Step()
	}
}
