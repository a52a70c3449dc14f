package core

// TimelineEntry is one interval of the execution timeline. An empty Pid
// denotes a CPU-idle interval; idle intervals are always tagged FreqLow.
type TimelineEntry struct {
	Pid       string         `json:"process_id,omitempty"`
	Start     int            `json:"start"`
	End       int            `json:"end"`
	FreqLevel FrequencyLevel `json:"freq_level"`
}

func (e TimelineEntry) Idle() bool {
	return e.Pid == ""
}

func (e TimelineEntry) Duration() int {
	return e.End - e.Start
}

// Timeline is the ordered record of a simulation run. Entries are
// contiguous and non-overlapping: each entry starts where the previous
// one ended.
type Timeline []TimelineEntry

// Makespan is the distance between the start of the first entry and the
// end of the last, 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End - t[0].Start
}

// BusyTime sums the durations of all non-idle entries.
func (t Timeline) BusyTime() int {
	var busy int
	for _, e := range t {
		if !e.Idle() {
			busy += e.Duration()
		}
	}
	return busy
}

// TotalEnergy sums power(level) * duration over non-idle entries.
func (t Timeline) TotalEnergy() float64 {
	var energy float64
	for _, e := range t {
		if !e.Idle() {
			energy += PowerLevels[e.FreqLevel] * float64(e.Duration())
		}
	}
	return energy
}
