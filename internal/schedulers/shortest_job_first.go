package schedulers

import (
	"sort"

	"energy-scheduler/internal/core"
)

// ScheduleShortestJobFirst picks the ready process with the smallest
// burst time at every dispatch point. Non-preemptive: a newly arrived
// shorter job never interrupts the running one. Burst ties keep the
// current ready-queue order.
func ScheduleShortestJobFirst(processes []core.Process, strategy core.FrequencyStrategy) core.Timeline {
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
			return ready[i].BurstTime < ready[j].BurstTime
		})
		current := ready[0]
		ready = ready[1:]

		freq := strategy(len(ready)+1, clock, core.ShortestJobFirst)
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
