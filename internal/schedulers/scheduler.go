package schedulers

import (
	"fmt"
	"sort"
	"sync"

	"energy-scheduler/internal/core"
	"energy-scheduler/internal/responses"
)

// Schedule validates the input, runs the chosen dispatch policy and
// reduces its timeline into a schedule response. quantum is only
// consulted by the round-robin family.
func Schedule(algo core.Algorithm, processes []core.Process, quantum int) (responses.ScheduleResponse, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if algo.UsesQuantum() && quantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: got %d", core.ErrNonPositiveQuantum, quantum)
	}

	var timeline core.Timeline
	switch algo {
	case core.FirstComeFirstServe:
		timeline = ScheduleFirstComeFirstServe(processes, core.AlwaysHighStrategy)
	case core.ShortestJobFirst:
		timeline = ScheduleShortestJobFirst(processes, core.AlwaysHighStrategy)
	case core.PriorityScheduling:
		timeline = SchedulePriority(processes, core.AlwaysHighStrategy)
	case core.RoundRobin:
		timeline = ScheduleRoundRobin(processes, quantum, core.AlwaysHighStrategy, core.RoundRobin)
	case core.EnergyEfficientRoundRobin:
		timeline = ScheduleRoundRobin(processes, quantum, core.EnergyAwareStrategy, core.EnergyEfficientRoundRobin)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %d", core.ErrUnknownAlgorithm, int(algo))
	}

	return generateResponse(algo, processes, timeline), nil
}

// ScheduleAll runs every supported algorithm over the same input, one
// goroutine per algorithm. Each run works on its own copy of the process
// list and builds its own timeline, so no coordination is needed beyond
// joining the results.
func ScheduleAll(processes []core.Process, quantum int) ([]responses.ScheduleResponse, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrNonPositiveQuantum, quantum)
	}

	results := make([]responses.ScheduleResponse, len(core.Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(core.Algorithms))
	for i, algo := range core.Algorithms {
		go func(i int, algo core.Algorithm) {
			defer wg.Done()
			// input is already validated, Schedule cannot fail here
			results[i], _ = Schedule(algo, processes, quantum)
		}(i, algo)
	}
	wg.Wait()

	return results, nil
}

// sortedByArrival copies the input and stable-sorts it by arrival time,
// so ties keep their input order and the caller's slice stays untouched.
func sortedByArrival(processes []core.Process) []core.Process {
	procs := make([]core.Process, len(processes))
	copy(procs, processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ArrivalTime < procs[j].ArrivalTime
	})
	return procs
}

func startClock(procs []core.Process) int {
	if len(procs) == 0 {
		return 0
	}
	return procs[0].ArrivalTime
}

// admitArrivals moves every process that has arrived by clock from
// procs[next:] into the ready queue, in arrival order, and returns the
// new next index.
func admitArrivals(procs []core.Process, next, clock int, ready *[]core.Process) int {
	for next < len(procs) && procs[next].ArrivalTime <= clock {
		*ready = append(*ready, procs[next])
		next++
	}
	return next
}

// appendIdle records a CPU-idle gap up to the next arrival. Idle time
// always reports low power regardless of the active strategy.
func appendIdle(timeline core.Timeline, from, until int) core.Timeline {
	return append(timeline, core.TimelineEntry{
		Start:     from,
		End:       until,
		FreqLevel: core.FreqLow,
	})
}
