// Package tasks holds the pipeline's task bodies. Each task exposes Step, a
// single loop iteration, and Run, which repeats Step forever with the task's
// own suspension points.
package tasks

import "github.com/ghalamif/AegisRT/internal/app/kernel"

// Task names as registered with the scheduler.
const (
	SensorProducerName    = "SensorProducer"
	StatsProcessorName    = "StatsProcessor"
	AlertSinkName         = "AlertSink"
	SystemMonitorName     = "SystemMonitor"
	CommandDispatcherName = "CommandDispatcher"
	DataLoggerName        = "DataLogger"
)

const (
	SensorPriority  = kernel.IdlePriority + 3
	StatsPriority   = kernel.IdlePriority + 2
	AlertPriority   = kernel.IdlePriority + 1
	LoggerPriority  = kernel.IdlePriority + 1
	MonitorPriority = kernel.IdlePriority + 1
	CommandPriority = kernel.IdlePriority + 1
)

// Output line shapes.
const (
	BannerLine       = "AegisRT telemetry pipeline started"
	LogStartLine     = "--- SENSOR LOG START ---"
	TableHeaderLine  = "| Tick | Temp(°C) | Humidity(%) | Light(lux) |"
	TableRuleLine    = "---------------------------------------------"
	sensorLineFormat = "| %4d | %8.1f | %10.2f | %10d |"
	processFormat    = "[PROCESS] Avg Temp: %5.1f°C Avg Hum: %5.2f%% (Samples: %d)"
	alertFormat      = "[ALERT] %s"
	alertTextFormat  = "\x1b[31mRapid temp change: %5.1f°C -> %5.1f°C\x1b[0m"
	monitorFormat    = "[MONITOR] Tick:%d Heap:%d%% Errors:%d"
	commandFormat    = "[COMMAND] Tick:%d Processing:%s -> OK (Cmd #%d)"
)
