package schedulers

import (
	"energy-scheduler/internal/core"
)

// ScheduleRoundRobin grants the head of a FIFO ready queue up to one
// quantum per dispatch. After a slice, processes that arrived during it
// are admitted first, then the preempted process (if unfinished) is
// re-appended behind them. algo is passed through to the frequency
// strategy so the energy-efficient variant reports its own name.
func ScheduleRoundRobin(processes []core.Process, quantum int, strategy core.FrequencyStrategy, algo core.Algorithm) core.Timeline {
	if strategy == nil {
		strategy = core.AlwaysHighStrategy
	}
	procs := sortedByArrival(processes)
	clock := startClock(procs)

	remaining := make(map[string]int, len(procs))
	for _, p := range procs {
		remaining[p.Id] = p.BurstTime
	}

	var timeline core.Timeline
	ready := make([]core.Process, 0, len(procs))
	next := 0
	completed := 0

	for completed < len(procs) {
		next = admitArrivals(procs, next, clock, &ready)

		if len(ready) == 0 {
			if next >= len(procs) {
				break
			}
			timeline = appendIdle(timeline, clock, procs[next].ArrivalTime)
			clock = procs[next].ArrivalTime
			continue
		}

		current := ready[0]
		ready = ready[1:]

		slice := remaining[current.Id]
		if slice > quantum {
			slice = quantum
		}

		freq := strategy(len(ready)+1, clock, algo)
		timeline = append(timeline, core.TimelineEntry{
			Pid:       current.Id,
			Start:     clock,
			End:       clock + slice,
			FreqLevel: freq,
		})
		remaining[current.Id] -= slice
		clock += slice

		// arrivals during the slice queue ahead of the preempted process
		next = admitArrivals(procs, next, clock, &ready)

		if remaining[current.Id] > 0 {
			ready = append(ready, current)
		} else {
			completed++
		}
	}

	return timeline
}
