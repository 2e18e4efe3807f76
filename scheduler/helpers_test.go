package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type arrival struct {
	time     int
	id       int64
	burst    int
	priority int64
}

func newSchedule(t *testing.T, arrivals ...arrival) *ArrivalSchedule {
	t.Helper()
	s := NewArrivalSchedule()
	for _, a := range arrivals {
		require.NoError(t, s.Add(a.time, Process{ID: a.id, BurstTime: a.burst, Priority: a.priority}))
	}
	return s
}

// pids renders the timeline as process ids, -1 for idle units.
func pids(tl *Timeline) []int64 {
	out := make([]int64, 0, tl.Len())
	for _, e := range tl.Entries() {
		if e.PCB == nil {
			out = append(out, -1)
			continue
		}
		out = append(out, e.PCB.Process().ID)
	}
	return out
}

type completion struct {
	id   int64
	time int
}

func completions(s Scheduler) []completion {
	var out []completion
	for _, c := range s.CompletedProcesses() {
		out = append(out, completion{id: c.Process.ID, time: c.CompletionTime})
	}
	return out
}

func completedByID(s Scheduler) map[int64]CompletedProcess {
	out := make(map[int64]CompletedProcess)
	for _, c := range s.CompletedProcesses() {
		out[c.Process.ID] = c
	}
	return out
}
