package domain

// SensorSample is one simulated environmental reading.
//
// Temperature is in tenths of a degree Celsius, Humidity in hundredths of a
// percent and Light in lux. Sequence increases by one per sample, starting at 1.
type SensorSample struct {
	Temperature int    `json:"temp"`
	Humidity    uint32 `json:"humidity"`
	Light       uint32 `json:"light"`
	Sequence    uint64 `json:"seq"`
}
