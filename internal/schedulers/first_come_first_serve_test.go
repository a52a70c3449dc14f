package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-scheduler/internal/core"
)

func demoProcesses() []core.Process {
	return []core.Process{
		{Id: "P1", ArrivalTime: 0, BurstTime: 7, Priority: 2},
		{Id: "P2", ArrivalTime: 2, BurstTime: 4, Priority: 1},
		{Id: "P3", ArrivalTime: 4, BurstTime: 1, Priority: 3},
		{Id: "P4", ArrivalTime: 5, BurstTime: 4, Priority: 2},
	}
}

func TestFirstComeFirstServe_DemoWorkload(t *testing.T) {
	timeline := ScheduleFirstComeFirstServe(demoProcesses(), core.AlwaysHighStrategy)

	expected := core.Timeline{
		{Pid: "P1", Start: 0, End: 7, FreqLevel: core.FreqHigh},
		{Pid: "P2", Start: 7, End: 11, FreqLevel: core.FreqHigh},
		{Pid: "P3", Start: 11, End: 12, FreqLevel: core.FreqHigh},
		{Pid: "P4", Start: 12, End: 16, FreqLevel: core.FreqHigh},
	}
	assert.Equal(t, expected, timeline)
}

func TestFirstComeFirstServe_AverageWaitingTime(t *testing.T) {
	response, err := Schedule(core.FirstComeFirstServe, demoProcesses(), 0)
	require.NoError(t, err)

	// hand computed: (0 + 5 + 7 + 7) / 4
	assert.InDelta(t, 4.75, response.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 8.75, response.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 4.75, response.AverageResponseTime, 1e-9)
	assert.InDelta(t, 100.0, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 480.0, response.TotalEnergy, 1e-9)
}

func TestFirstComeFirstServe_IdleGap(t *testing.T) {
	processes := []core.Process{
		{Id: "P1", ArrivalTime: 0, BurstTime: 2},
		{Id: "P2", ArrivalTime: 5, BurstTime: 3},
	}
	timeline := ScheduleFirstComeFirstServe(processes, core.AlwaysHighStrategy)

	expected := core.Timeline{
		{Pid: "P1", Start: 0, End: 2, FreqLevel: core.FreqHigh},
		{Start: 2, End: 5, FreqLevel: core.FreqLow},
		{Pid: "P2", Start: 5, End: 8, FreqLevel: core.FreqHigh},
	}
	assert.Equal(t, expected, timeline)
}

func TestFirstComeFirstServe_ClockStartsAtEarliestArrival(t *testing.T) {
	processes := []core.Process{{Id: "P1", ArrivalTime: 3, BurstTime: 2}}
	timeline := ScheduleFirstComeFirstServe(processes, core.AlwaysHighStrategy)

	require.Len(t, timeline, 1)
	assert.Equal(t, 3, timeline[0].Start)
	assert.Equal(t, 5, timeline[0].End)
}

func TestFirstComeFirstServe_ArrivalTieKeepsInputOrder(t *testing.T) {
	processes := []core.Process{
		{Id: "A", ArrivalTime: 0, BurstTime: 1},
		{Id: "B", ArrivalTime: 0, BurstTime: 1},
		{Id: "C", ArrivalTime: 0, BurstTime: 1},
	}
	timeline := ScheduleFirstComeFirstServe(processes, core.AlwaysHighStrategy)

	require.Len(t, timeline, 3)
	assert.Equal(t, "A", timeline[0].Pid)
	assert.Equal(t, "B", timeline[1].Pid)
	assert.Equal(t, "C", timeline[2].Pid)
}

func TestFirstComeFirstServe_DoesNotMutateInput(t *testing.T) {
	processes := []core.Process{
		{Id: "P2", ArrivalTime: 5, BurstTime: 3},
		{Id: "P1", ArrivalTime: 0, BurstTime: 2},
	}
	ScheduleFirstComeFirstServe(processes, core.AlwaysHighStrategy)

	assert.Equal(t, "P2", processes[0].Id)
	assert.Equal(t, "P1", processes[1].Id)
}
