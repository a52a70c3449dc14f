package core

// FrequencyLevel is the discrete CPU frequency a timeline entry ran at.
type FrequencyLevel string

const (
	FreqLow  FrequencyLevel = "low"
	FreqMed  FrequencyLevel = "med"
	FreqHigh FrequencyLevel = "high"
)

// PowerLevels maps each frequency level to its power draw in energy
// units per unit time.
var PowerLevels = map[FrequencyLevel]float64{
	FreqLow:  10.0,
	FreqMed:  18.0,
	FreqHigh: 30.0,
}

// FrequencyStrategy picks the frequency level for one dispatch. queueLen
// counts the ready queue including the process about to run. The decision
// is recomputed independently at every dispatch point; there is no
// hysteresis, so queue-length oscillation causes frequency oscillation.
type FrequencyStrategy func(queueLen, time int, algo Algorithm) FrequencyLevel

// AlwaysHighStrategy is the baseline: full frequency regardless of load.
func AlwaysHighStrategy(queueLen, time int, algo Algorithm) FrequencyLevel {
	return FreqHigh
}

// EnergyAwareStrategy scales frequency with contention: near-idle systems
// run at reduced power, congested systems run at full power to protect
// latency.
func EnergyAwareStrategy(queueLen, time int, algo Algorithm) FrequencyLevel {
	if queueLen <= 2 {
		return FreqLow
	}
	if queueLen <= 5 {
		return FreqMed
	}
	return FreqHigh
}
