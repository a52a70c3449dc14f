package schedulers

import (
	"sort"

	"energy-scheduler/internal/core"
)

// SchedulePriority picks the ready process with the smallest priority
// value (lower = more urgent) at every dispatch point. Non-preemptive;
// priority ties keep the current ready-queue order.
func SchedulePriority(processes []core.Process, strategy core.FrequencyStrategy) core.Timeline {
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
			timeline = appendIdle(timeline, clock, procs[next].ArrivalTime)
			clock = procs[next].ArrivalTime
			continue
		}

		sort.SliceStable(ready, func(i, j int) bool {
			return ready[i].Priority < ready[j].Priority
		})
		current := ready[0]
		ready = ready[1:]

		freq := strategy(len(ready)+1, clock, core.PriorityScheduling)
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
