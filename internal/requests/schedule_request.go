package requests

import "energy-scheduler/internal/core"

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequests carries either explicit jobs or parallel attribute
// lists (arrival/burst/priority, ids generated as P1..Pn). Jobs win when
// both are present. TimeQuantum 0 means "use the configured default".
type ScheduleRequests struct {
	Jobs         []Job `json:"jobs"`
	ArrivalTimes []int `json:"arrival_times,omitempty"`
	BurstTimes   []int `json:"burst_times,omitempty"`
	Priorities   []int `json:"priorities,omitempty"`
	TimeQuantum  int   `json:"time_quantum,omitempty"`
}

// Processes converts the request into the core process set. Validation
// of the assembled set happens in the scheduler entry point; only the
// list form validates counts here, since the mismatch is gone once the
// lists are zipped.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	if len(r.Jobs) > 0 {
		processes := make([]core.Process, 0, len(r.Jobs))
		for _, job := range r.Jobs {
			processes = append(processes, core.Process{
				Id:          job.ProcessId,
				ArrivalTime: job.ArrivalTime,
				BurstTime:   job.BurstTime,
				Priority:    job.Priority,
			})
		}
		return processes, nil
	}
	return core.BuildProcesses(r.ArrivalTimes, r.BurstTimes, r.Priorities)
}
