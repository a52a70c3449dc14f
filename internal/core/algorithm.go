package core

import "fmt"

// Algorithm is the closed set of supported dispatch policies. Reporting
// switches over this enum rather than free-form strings, so a typo in a
// caller can never silently produce an unrecognized label.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	PriorityScheduling
	RoundRobin
	EnergyEfficientRoundRobin
)

// Algorithms lists every supported policy in a stable order, for
// comparison runs over the full set.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	PriorityScheduling,
	RoundRobin,
	EnergyEfficientRoundRobin,
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF (Non-preemptive)"
	case PriorityScheduling:
		return "Priority (Non-preemptive)"
	case RoundRobin:
		return "Round Robin"
	case EnergyEfficientRoundRobin:
		return "Energy-Efficient RR"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// UsesQuantum reports whether the policy is round-robin based and
// therefore needs a positive time quantum.
func (a Algorithm) UsesQuantum() bool {
	return a == RoundRobin || a == EnergyEfficientRoundRobin
}

// ParseAlgorithm maps the short selector names used by the API and CLI
// onto the enum.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "fcfs":
		return FirstComeFirstServe, nil
	case "sjf":
		return ShortestJobFirst, nil
	case "priority":
		return PriorityScheduling, nil
	case "rr":
		return RoundRobin, nil
	case "eerr":
		return EnergyEfficientRoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}
