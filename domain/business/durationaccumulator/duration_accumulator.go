package durationaccumulator

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of trip durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(newDuration float64) {
	da.Counter += 1
	da.TotalDuration += newDuration
}

// GetAverageDuration returns the mean duration in seconds, zero if nothing was collected
func (da *DurationAccumulator) GetAverageDuration() float64 {
	if da.Counter == 0 {
		return 0
	}
	return da.TotalDuration / float64(da.Counter)
}
