package util

import "energy-scheduler/internal/responses"

// CalculateAverage averages the per-process timing figures over
// processCount, which may exceed len(processDetails) when a process was
// skipped as never scheduled. All averages are 0 for an empty input.
func CalculateAverage(processDetails []responses.ProcessResponse, processCount int) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if processCount == 0 {
		return 0, 0, 0
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	count := float64(processCount)

	averageWaitingTime = waitingTimeSum / count
	averageResponseTime = responseTimeSum / count
	averageTurnAroundTime = turnAroundTimeSum / count
	return
}
