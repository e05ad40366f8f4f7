package tasks

import (
	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// CommandDispatcher synthesizes the next command, passes it through its own
// command queue and reports it as processed. It is the queue's only user.
type CommandDispatcher struct {
	Queue   ports.Queue[domain.CommandMessage]
	Clock   ports.Clock
	Period  uint64
	Console ports.Console
	Obs     ports.Observability

	nextID uint32
}

func (d *CommandDispatcher) Step() domain.CommandMessage {
	d.Queue.Send(domain.CommandFor(d.nextID))
	d.nextID++

	cmd := d.Queue.Receive()
	d.Console.Linef(commandFormat, d.Clock.Now(), cmd.Command, cmd.ID)
	d.Obs.IncCounter(observability.CommandsHandled, 1)
	return cmd
}

// Run waits one period before each dispatch.
func (d *CommandDispatcher) Run() {
	for {
		d.Clock.Sleep(d.Period)
		d.Step()
	}
}
