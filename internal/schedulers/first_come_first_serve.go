package schedulers

import (
	"energy-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe dispatches ready processes strictly in
// arrival order, running each to completion before the next decision.
func ScheduleFirstComeFirstServe(processes []core.Process, strategy core.FrequencyStrategy) core.Timeline {
	if strategy == nil {
		strategy = core.AlwaysHighStrategy
	}
	procs := sortedByArrival(processes)
	clock := startClock(procs)

	var timeline core.Timeline
	ready := make([]core.Process, 0, len(procs))
	next := 0

	for next < len(procs) || len(ready) > 0 {
		next = admitArrivals(procs, next, clock, &ready)

		if len(ready) == 0 {
			// CPU idle until the next arrival
			timeline = appendIdle(timeline, clock, procs[next].ArrivalTime)
			clock = procs[next].ArrivalTime
			continue
		}

		current := ready[0]
		ready = ready[1:]

		freq := strategy(len(ready)+1, clock, core.FirstComeFirstServe)
		end := clock + current.BurstTime
		timeline = append(timeline, core.TimelineEntry{
			Pid:       current.Id,
			Start:     clock,
			End:       end,
			FreqLevel: freq,
		})
		clock = end
	}

	return timeline
}
