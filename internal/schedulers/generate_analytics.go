package schedulers

import (
	"log"

	"energy-scheduler/internal/core"
	"energy-scheduler/internal/responses"
	"energy-scheduler/internal/util"
)

// generateResponse reduces a completed timeline into per-process timing
// facts and aggregate statistics. Averages are taken over the full
// process count: a process that never shows up in the timeline (which a
// correct policy never produces) is flagged and skipped from the sums,
// but the divisor stays the full count.
func generateResponse(algo core.Algorithm, processes []core.Process, timeline core.Timeline) responses.ScheduleResponse {
	firstStart := make(map[string]int, len(processes))
	lastEnd := make(map[string]int, len(processes))
	for _, entry := range timeline {
		if entry.Idle() {
			continue
		}
		if _, ok := firstStart[entry.Pid]; !ok {
			firstStart[entry.Pid] = entry.Start
		}
		lastEnd[entry.Pid] = entry.End
	}

	processDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		completion, ok := lastEnd[p.Id]
		if !ok {
			log.Println("pid:", p.Id, "never appeared in the timeline, skipping its metrics")
			continue
		}
		turnAroundTime := completion - p.ArrivalTime
		waitingTime := turnAroundTime - p.BurstTime
		responseTime := firstStart[p.Id] - p.ArrivalTime

		processDetails = append(processDetails, responses.ProcessResponse{
			ProcessId:      p.Id,
			ResponseTime:   float64(responseTime),
			TurnAroundTime: float64(turnAroundTime),
			WaitingTime:    float64(waitingTime),
			CompletionTime: completion,
		})
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime :=
		util.CalculateAverage(processDetails, len(processes))

	var utilization float64
	if makespan := timeline.Makespan(); makespan > 0 {
		utilization = float64(timeline.BusyTime()) / float64(makespan) * 100.0
	}

	return responses.ScheduleResponse{
		Algorithm:             algo.String(),
		Timeline:              timeline,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		TotalEnergy:           timeline.TotalEnergy(),
		Details:               processDetails,
	}
}
