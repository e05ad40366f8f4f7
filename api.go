package aegisrt

import (
	"io"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	base "github.com/ghalamif/AegisRT/pkg/aegisrt"
)

// Re-exported errors for convenience.
var (
	ErrQueueFull  = base.ErrQueueFull
	ErrQueueEmpty = base.ErrQueueEmpty
)

const (
	FanoutBroadcast = base.FanoutBroadcast
	FanoutCompete   = base.FanoutCompete
)

// Type aliases so consumers can import github.com/ghalamif/AegisRT directly.
type (
	Config          = base.Config
	PipelineConfig  = base.PipelineConfig
	QueueConfig     = base.QueueConfig
	PeriodConfig    = base.PeriodConfig
	MetricsConfig   = base.MetricsConfig
	LogConfig       = base.LogConfig
	Flow            = base.Flow
	FlowOption      = base.FlowOption
	StreamInOption  = base.StreamInOption
	StreamOutOption = base.StreamOutOption
	Runtime         = base.Runtime
	RuntimeOption   = base.RuntimeOption
	SensorSample    = base.SensorSample
	AlertMessage    = base.AlertMessage
	CommandMessage  = base.CommandMessage
	Clock           = base.Clock
	Observability   = base.Observability
	Field           = base.Field
	TaskInfo        = base.TaskInfo
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

func DefaultConfig() *Config {
	return base.DefaultConfig()
}

// Flow builder helpers.
func Conf(path string, opts ...FlowOption) (*Flow, error) {
	return base.Conf(path, opts...)
}

func ConfFromConfig(cfg *Config, opts ...FlowOption) (*Flow, error) {
	return base.ConfFromConfig(cfg, opts...)
}

func WithFlowOptions(opts ...RuntimeOption) FlowOption {
	return base.WithFlowOptions(opts...)
}

func StreamInClock(c Clock) StreamInOption {
	return base.StreamInClock(c)
}

func StreamInSeed(seed uint16) StreamInOption {
	return base.StreamInSeed(seed)
}

func StreamOutWriter(w io.Writer) StreamOutOption {
	return base.StreamOutWriter(w)
}

func StreamOutObservability(obs Observability) StreamOutOption {
	return base.StreamOutObservability(obs)
}

// Runtime and options.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func WithClock(c Clock) RuntimeOption {
	return base.WithClock(c)
}

func WithOutput(w io.Writer) RuntimeOption {
	return base.WithOutput(w)
}

func WithObservability(obs Observability) RuntimeOption {
	return base.WithObservability(obs)
}

func WithLogger(l log.Logger) RuntimeOption {
	return base.WithLogger(l)
}

func WithRegistry(reg *prometheus.Registry) RuntimeOption {
	return base.WithRegistry(reg)
}
