package responses

import "energy-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
	CompletionTime int     `json:"completion_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              core.Timeline     `json:"timeline"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	TotalEnergy           float64           `json:"total_energy"`
	Details               []ProcessResponse `json:"details"`
}
