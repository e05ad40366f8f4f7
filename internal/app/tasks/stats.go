package tasks

import (
	"fmt"
	"math"

	"github.com/ghalamif/AegisRT/internal/adapters/observability"
	"github.com/ghalamif/AegisRT/internal/domain"
	"github.com/ghalamif/AegisRT/internal/ports"
)

// DefaultAlertThreshold is a 5.0°C jump, in tenths of a degree.
const DefaultAlertThreshold = 50

// noPreviousTemp marks that no sample has been observed yet.
const noPreviousTemp = math.MinInt

// Stats keeps integer running means in the samples' fixed-point units.
// Each update truncates, so the means may drift below the exact batch mean.
type Stats struct {
	threshold int
	avgTemp   int64
	avgHum    int64
	samples   int64
	prevTemp  int
}

func NewStats(threshold int) *Stats {
	return &Stats{threshold: threshold, prevTemp: noPreviousTemp}
}

// Observe folds s into the means. It returns an alert when the temperature
// moved by more than the threshold since the previous sample.
func (st *Stats) Observe(s domain.SensorSample) (domain.AlertMessage, bool) {
	n := st.samples
	st.avgTemp = (st.avgTemp*n + int64(s.Temperature)) / (n + 1)
	st.avgHum = (st.avgHum*n + int64(s.Humidity)) / (n + 1)
	st.samples++

	var (
		alert domain.AlertMessage
		fire  bool
	)
	if st.prevTemp != noPreviousTemp && absInt(s.Temperature-st.prevTemp) > st.threshold {
		alert = domain.NewAlertMessage(fmt.Sprintf(alertTextFormat,
			float64(st.prevTemp)/10, float64(s.Temperature)/10))
		fire = true
	}
	st.prevTemp = s.Temperature
	return alert, fire
}

func (st *Stats) AvgTemp() int64     { return st.avgTemp }
func (st *Stats) AvgHumidity() int64 { return st.avgHum }
func (st *Stats) Samples() int64     { return st.samples }

// StatsProcessor folds every received sample into Stats and queues alerts.
type StatsProcessor struct {
	In      ports.Queue[domain.SensorSample]
	Alerts  ports.Queue[domain.AlertMessage]
	Stats   *Stats
	Console ports.Console
	Obs     ports.Observability
}

func (p *StatsProcessor) Step() {
	s := p.In.Receive()
	alert, fire := p.Stats.Observe(s)
	p.Obs.IncCounter(observability.SamplesProcessed, 1)

	p.Console.Linef(processFormat,
		float64(p.Stats.AvgTemp())/10,
		float64(p.Stats.AvgHumidity())/100,
		p.Stats.Samples())

	if fire {
		p.Alerts.Send(alert)
		p.Obs.IncCounter(observability.AlertsRaised, 1)
	}
}

func (p *StatsProcessor) Run() {
	for {
		p.Step()
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
