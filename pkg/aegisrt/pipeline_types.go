package aegisrt

import (
	"github.com/ghalamif/AegisRT/internal/app/kernel"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// SensorSample is one simulated reading flowing through the sensor queues.
type SensorSample = domain.SensorSample

// AlertMessage is a formatted anomaly description.
type AlertMessage = domain.AlertMessage

// CommandMessage is a synthesized diagnostic command.
type CommandMessage = domain.CommandMessage

// Clock is the scheduler timebase. Inject one with WithClock to drive ticks by hand.
type Clock = ports.Clock

// Observability emits structured logs and metrics about the pipeline.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// TaskInfo describes a registered task.
type TaskInfo = kernel.TaskInfo

var (
	// ErrQueueFull is returned by non-blocking sends on a full queue.
	ErrQueueFull = ports.ErrQueueFull
	// ErrQueueEmpty is returned by non-blocking receives on an empty queue.
	ErrQueueEmpty = ports.ErrQueueEmpty
)
