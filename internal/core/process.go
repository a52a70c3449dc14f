package core

import "fmt"

// Process describes one schedulable unit. It is never mutated by a
// scheduler: round-robin keeps its remaining time in a separate map.
type Process struct {
	Id          string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"` // lower value = more urgent
}

// ValidateProcesses rejects malformed input before any simulation starts.
func ValidateProcesses(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %s has burst time %d", ErrNonPositiveBurst, p.Id, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %s arrives at %d", ErrNegativeArrival, p.Id, p.ArrivalTime)
		}
		if _, ok := seen[p.Id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProcessId, p.Id)
		}
		seen[p.Id] = struct{}{}
	}
	return nil
}

// BuildProcesses assembles a process set from parallel attribute lists,
// generating ids P1..Pn. An empty priorities list defaults every priority
// to 0; any other length mismatch is rejected.
func BuildProcesses(arrivals, bursts, priorities []int) ([]Process, error) {
	if len(arrivals) != len(bursts) {
		return nil, fmt.Errorf("%w: %d arrival times vs %d burst times",
			ErrCountMismatch, len(arrivals), len(bursts))
	}
	if len(priorities) != 0 && len(priorities) != len(arrivals) {
		return nil, fmt.Errorf("%w: %d priorities vs %d processes",
			ErrCountMismatch, len(priorities), len(arrivals))
	}

	processes := make([]Process, 0, len(arrivals))
	for i := range arrivals {
		p := Process{
			Id:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: arrivals[i],
			BurstTime:   bursts[i],
		}
		if len(priorities) != 0 {
			p.Priority = priorities[i]
		}
		processes = append(processes, p)
	}

	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
