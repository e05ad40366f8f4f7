package aegisrt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ghalamif/AegisRT/internal/adapters/clock"
	"github.com/ghalamif/AegisRT/internal/adapters/console"
	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/adapters/queue"
	"github.com/ghalamif/AegisRT/internal/app/config"
	"github.com/ghalamif/AegisRT/internal/app/kernel"
	"github.com/ghalamif/AegisRT/internal/app/sim"
	"github.com/ghalamif/AegisRT/internal/app/tasks"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// RuntimeOption customizes the dependencies used by Runtime.
type RuntimeOption func(*runtimeOverrides)

type runtimeOverrides struct {
	clock         ports.Clock
	output        io.Writer
	observability Observability
	logger        log.Logger
	registry      *prometheus.Registry
}

// WithClock injects a tick source. The runtime never advances an injected
// clock; the caller owns its timebase.
func WithClock(c Clock) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.clock = c
	}
}

// WithOutput redirects the text stream (default os.Stdout).
func WithOutput(w io.Writer) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.output = w
	}
}

// WithObservability plugs in a custom observability backend.
func WithObservability(obs Observability) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.observability = obs
	}
}

// WithLogger replaces the default stderr logfmt logger used by the built-in
// observability backend.
func WithLogger(l log.Logger) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.logger = l
	}
}

// WithRegistry registers pipeline metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.registry = reg
	}
}

// queues is the runtime's queue arena. In compete mode logger aliases sensor.
type queues struct {
	sensor  *queue.MemQueue[domain.SensorSample]
	logger  *queue.MemQueue[domain.SensorSample]
	alert   *queue.MemQueue[domain.AlertMessage]
	command *queue.MemQueue[domain.CommandMessage]
}

// Runtime wires the six pipeline tasks to their queues and tick source and
// exposes lifecycle hooks for embedding the pipeline in any Go program.
type Runtime struct {
	cfg      *Config
	runID    string
	obs      ports.Observability
	clock    ports.Clock
	ticks    *clock.Ticks // set when the runtime owns and drives the clock
	console  *console.Writer
	queues   queues
	sched    *kernel.Scheduler
	dataLog  *tasks.DataLogger
	registry *prometheus.Registry

	metricsSrv  *http.Server
	gaugeStopCh chan struct{}
	stopDrive   context.CancelFunc
}

// NewRuntime allocates the queues, builds each task and registers it with
// the scheduler. Nothing runs until Start.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var overrides runtimeOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	rt := &Runtime{
		cfg:      cfg,
		runID:    uuid.NewString(),
		registry: overrides.registry,
	}
	if rt.registry == nil {
		rt.registry = prometheus.NewRegistry()
		rt.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	obs := overrides.observability
	if obs == nil {
		logger := overrides.logger
		if logger == nil {
			var err error
			logger, err = observability.NewLogger(os.Stderr, cfg.Log.Level)
			if err != nil {
				return nil, err
			}
		}
		logger = log.With(logger, "run_id", rt.runID)

		prom, err := observability.NewPromObs(rt.registry, logger)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		obs = prom
	}
	rt.obs = obs

	rt.clock = overrides.clock
	if rt.clock == nil {
		rt.ticks = clock.NewTicks()
		rt.clock = rt.ticks
	}

	out := overrides.output
	if out == nil {
		out = os.Stdout
	}
	rt.console = console.NewWriter(out)

	if err := rt.allocQueues(); err != nil {
		return nil, err
	}
	if err := rt.createTasks(); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *Runtime) allocQueues() error {
	var err error
	if r.queues.sensor, err = queue.NewMemQueue[domain.SensorSample](r.cfg.Queues.Sensor); err != nil {
		return fmt.Errorf("sensor queue: %w", err)
	}
	r.queues.logger = r.queues.sensor
	if r.cfg.Pipeline.SensorFanout == config.FanoutBroadcast {
		if r.queues.logger, err = queue.NewMemQueue[domain.SensorSample](r.cfg.Queues.Sensor); err != nil {
			return fmt.Errorf("logger queue: %w", err)
		}
	}
	if r.queues.alert, err = queue.NewMemQueue[domain.AlertMessage](r.cfg.Queues.Alert); err != nil {
		return fmt.Errorf("alert queue: %w", err)
	}
	if r.queues.command, err = queue.NewMemQueue[domain.CommandMessage](r.cfg.Queues.Command); err != nil {
		return fmt.Errorf("command queue: %w", err)
	}
	return nil
}

func (r *Runtime) createTasks() error {
	// The simulator and the monitor each own a register seeded alike, so the
	// sample stream does not depend on how the two tasks interleave.
	sensorRNG, err := sim.NewLFSR(r.cfg.Pipeline.Seed)
	if err != nil {
		return err
	}
	monitorRNG, err := sim.NewLFSR(r.cfg.Pipeline.Seed)
	if err != nil {
		return err
	}

	outs := []ports.Queue[domain.SensorSample]{r.queues.sensor}
	if r.queues.logger != r.queues.sensor {
		outs = append(outs, r.queues.logger)
	}

	producer := &tasks.SensorProducer{
		Sim:     sim.NewSimulator(sensorRNG),
		Outs:    outs,
		Clock:   r.clock,
		Period:  r.cfg.Periods.Sensor,
		Console: r.console,
		Obs:     r.obs,
	}
	stats := &tasks.StatsProcessor{
		In:      r.queues.sensor,
		Alerts:  r.queues.alert,
		Stats:   tasks.NewStats(r.cfg.Pipeline.AlertThreshold),
		Console: r.console,
		Obs:     r.obs,
	}
	alerts := &tasks.AlertSink{In: r.queues.alert, Console: r.console, Obs: r.obs}
	monitor := &tasks.SystemMonitor{
		RNG:     monitorRNG,
		Clock:   r.clock,
		Period:  r.cfg.Periods.Monitor,
		Console: r.console,
		Obs:     r.obs,
	}
	commands := &tasks.CommandDispatcher{
		Queue:   r.queues.command,
		Clock:   r.clock,
		Period:  r.cfg.Periods.Command,
		Console: r.console,
		Obs:     r.obs,
	}
	r.dataLog = &tasks.DataLogger{In: r.queues.logger, Obs: r.obs}

	r.sched = kernel.NewScheduler(r.obs)
	table := []struct {
		name  string
		prio  kernel.Priority
		entry kernel.TaskFunc
	}{
		{tasks.SensorProducerName, tasks.SensorPriority, producer.Run},
		{tasks.StatsProcessorName, tasks.StatsPriority, stats.Run},
		{tasks.SystemMonitorName, tasks.MonitorPriority, monitor.Run},
		{tasks.CommandDispatcherName, tasks.CommandPriority, commands.Run},
		{tasks.DataLoggerName, tasks.LoggerPriority, r.dataLog.Run},
		{tasks.AlertSinkName, tasks.AlertPriority, alerts.Run},
	}
	for _, t := range table {
		if err := r.sched.CreateTask(t.name, t.prio, t.entry); err != nil {
			return err
		}
	}
	return nil
}

// Start writes the log banner, hands the tasks to the scheduler and starts
// the tick driver and metrics server. It returns immediately.
func (r *Runtime) Start() error {
	if r == nil {
		return fmt.Errorf("runtime is nil")
	}

	r.console.Linef(tasks.BannerLine)
	r.console.Linef(tasks.LogStartLine)
	r.console.Linef("%s", tasks.TableHeaderLine)
	r.console.Linef(tasks.TableRuleLine)

	if err := r.sched.Start(); err != nil {
		return err
	}
	r.obs.LogInfo("pipeline_started",
		ports.Field{Key: "tick", Value: r.cfg.Pipeline.Tick},
		ports.Field{Key: "fanout", Value: r.cfg.Pipeline.SensorFanout},
		ports.Field{Key: "seed", Value: fmt.Sprintf("%#04x", r.cfg.Pipeline.Seed)})

	if r.ticks != nil {
		ctx, cancel := context.WithCancel(context.Background())
		r.stopDrive = cancel
		go r.ticks.Drive(ctx, r.cfg.Pipeline.Tick)
	}

	r.startMetrics()
	return nil
}

// Run starts the runtime and blocks until ctx is cancelled, then shuts down
// the tick driver and metrics server. Tasks are not stopped; they stay
// suspended until the process exits.
func (r *Runtime) Run(ctx context.Context) error {
	if err := r.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Shutdown(shutdownCtx)
}

// Shutdown stops the tick driver, gauge sampler and metrics server.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if r.stopDrive != nil {
		r.stopDrive()
		r.stopDrive = nil
	}

	if r.gaugeStopCh != nil {
		close(r.gaugeStopCh)
		r.gaugeStopCh = nil
	}

	if r.metricsSrv != nil {
		if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
	}

	r.obs.LogInfo("pipeline_stopped")
	return errors.Join(errs...)
}

// Tasks returns the scheduler's task table.
func (r *Runtime) Tasks() []TaskInfo {
	return r.sched.Tasks()
}

// RunID identifies this runtime instance in logs.
func (r *Runtime) RunID() string { return r.runID }

func (r *Runtime) startMetrics() {
	r.gaugeStopCh = make(chan struct{})
	go r.recordQueueGauges(r.gaugeStopCh, r.cfg.Pipeline.Tick)

	if r.cfg.Metrics.Addr == "" {
		return
	}

	r.metricsSrv = &http.Server{
		Addr:              r.cfg.Metrics.Addr,
		Handler:           r.metricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := r.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.obs.LogError("metrics_server_exited", err, ports.Field{Key: "addr", Value: r.cfg.Metrics.Addr})
		}
	}()
}

func (r *Runtime) metricsRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return router
}

func (r *Runtime) recordQueueGauges(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.obs.SetGauge(observability.SensorQueueLength, float64(r.queues.sensor.Len()))
			r.obs.SetGauge(observability.LoggerQueueLength, float64(r.queues.logger.Len()))
			r.obs.SetGauge(observability.AlertQueueLength, float64(r.queues.alert.Len()))
			r.obs.SetGauge(observability.CommandQueueLength, float64(r.queues.command.Len()))
			r.obs.SetGauge(observability.CurrentTick, float64(r.clock.Now()))
		}
	}
}
