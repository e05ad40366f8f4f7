package sim

import "github.com/ghalamif/AegisRT/internal/domain"

// Simulated value ranges, as [base, base+span).
const (
	TempBase     = 150
	TempSpan     = 200
	HumidityBase = 3000
	HumiditySpan = 4000
	LightBase    = 300
	LightSpan    = 500
)

// Simulator maps three draws per sample onto plausible readings.
type Simulator struct {
	rng *LFSR
}

func NewSimulator(rng *LFSR) *Simulator {
	return &Simulator{rng: rng}
}

func (s *Simulator) Sample(seq uint64) domain.SensorSample {
	temp := TempBase + int(s.rng.Next()%TempSpan)
	hum := HumidityBase + uint32(s.rng.Next()%HumiditySpan)
	light := LightBase + uint32(s.rng.Next()%LightSpan)
	return domain.SensorSample{
		Temperature: temp,
		Humidity:    hum,
		Light:       light,
		Sequence:    seq,
	}
}

// Diagnostics are the synthesized system monitor values.
type Diagnostics struct {
	HeapPercent int
	Errors      int
}

// Diagnose draws heap utilisation in [70,80) and an error count in [0,5).
func Diagnose(rng *LFSR) Diagnostics {
	heap := 70 + int(rng.Next()%10)
	errs := int(rng.Next() % 5)
	return Diagnostics{HeapPercent: heap, Errors: errs}
}
