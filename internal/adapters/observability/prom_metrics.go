package observability

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ghalamif/AegisRT/internal/ports"
)

// Metric names understood by PromObs. Unknown names are ignored.
const (
	SamplesProduced  = "aegis_samples_produced_total"
	SamplesProcessed = "aegis_samples_processed_total"
	SamplesLogged    = "aegis_samples_logged_total"
	AlertsRaised     = "aegis_alerts_raised_total"
	AlertsDelivered  = "aegis_alerts_delivered_total"
	CommandsHandled  = "aegis_commands_dispatched_total"
	MonitorReports   = "aegis_monitor_reports_total"

	SensorQueueLength  = "aegis_sensor_queue_length"
	LoggerQueueLength  = "aegis_logger_queue_length"
	AlertQueueLength   = "aegis_alert_queue_length"
	CommandQueueLength = "aegis_command_queue_length"
	CurrentTick        = "aegis_tick"

	QueueSendWait = "aegis_queue_send_wait_seconds"
)

type PromObs struct {
	logger   log.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

// NewPromObs registers the pipeline collectors on reg and logs through logger.
// A nil logger discards log output.
func NewPromObs(reg prometheus.Registerer, logger log.Logger) (*PromObs, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	}

	p := &PromObs{
		logger: logger,
		counters: map[string]prometheus.Counter{
			SamplesProduced:  counter(SamplesProduced, "Sensor samples synthesized and queued."),
			SamplesProcessed: counter(SamplesProcessed, "Samples folded into the running statistics."),
			SamplesLogged:    counter(SamplesLogged, "Samples drained by the data logger."),
			AlertsRaised:     counter(AlertsRaised, "Temperature anomalies queued for delivery."),
			AlertsDelivered:  counter(AlertsDelivered, "Alerts written to the output stream."),
			CommandsHandled:  counter(CommandsHandled, "Diagnostic commands dispatched."),
			MonitorReports:   counter(MonitorReports, "System monitor reports emitted."),
		},
		gauges: map[string]prometheus.Gauge{
			SensorQueueLength:  gauge(SensorQueueLength, "Samples buffered for the stats processor."),
			LoggerQueueLength:  gauge(LoggerQueueLength, "Samples buffered for the data logger."),
			AlertQueueLength:   gauge(AlertQueueLength, "Alerts buffered for the alert sink."),
			CommandQueueLength: gauge(CommandQueueLength, "Commands buffered in the command queue."),
			CurrentTick:        gauge(CurrentTick, "Current scheduler tick."),
		},
		histos: map[string]prometheus.Observer{
			QueueSendWait: prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    QueueSendWait,
				Help:    "Time a producer spent blocked on a full queue.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			}),
		},
	}

	for _, c := range p.counters {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	for _, g := range p.gauges {
		if err := reg.Register(g); err != nil {
			return nil, err
		}
	}
	for _, h := range p.histos {
		if err := reg.Register(h.(prometheus.Collector)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	_ = level.Info(p.logger).Log(keyvals(msg, nil, fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	_ = level.Error(p.logger).Log(keyvals(msg, err, fields)...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func keyvals(msg string, err error, fields []ports.Field) []any {
	kv := make([]any, 0, 4+2*len(fields))
	kv = append(kv, "msg", msg)
	if err != nil {
		kv = append(kv, "err", err)
	}
	for _, f := range fields {
		kv = append(kv, f.Key, f.Value)
	}
	return kv
}

var _ ports.Observability = (*PromObs)(nil)
