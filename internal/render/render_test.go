package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nluthra2001/cpusched/internal/simulation"
	"github.com/nluthra2001/cpusched/scheduler"
)

func TestTitle(t *testing.T) {
	var buf bytes.Buffer
	Title(&buf, "FCFS")
	assert.Equal(t, "------------\n    FCFS\n------------\n", buf.String())

	buf.Reset()
	Title(&buf, "Round-Robin\nquantum 2")
	assert.Equal(t, "-------------------\n    Round-Robin\n    quantum 2\n-------------------\n", buf.String())
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, []simulation.Slice{
		{Idle: true, Start: 0, Stop: 2},
		{PID: 1, Start: 2, Stop: 5},
		{PID: 12, Start: 5, Stop: 6},
	})

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "| <Idle> |   1   |   12   |", lines[1])
	assert.Equal(t, "0\t2\t5\t6", lines[2])
}

func TestReport(t *testing.T) {
	r, err := simulation.Run(simulation.Request{
		Algorithm: "priority",
		Processes: []simulation.ProcessSpec{
			{ID: 2, Arrival: 1, Burst: 1, Priority: 1},
			{ID: 1, Arrival: 0, Burst: 5, Priority: 5},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Report(&buf, r)

	out := buf.String()
	assert.Contains(t, out, scheduler.AlgorithmPriority.Title())
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "PRIORITY")
	assert.Contains(t, out, "Context switches: 1")
	assertRowsOrdered(t, out[strings.Index(out, "Schedule table"):], "1", "2")
}

func TestReport_RoundRobinTitle(t *testing.T) {
	r, err := simulation.Run(simulation.Request{
		Algorithm: "rr",
		Quantum:   3,
		Processes: []simulation.ProcessSpec{{ID: 1, Burst: 2}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	Report(&buf, r)
	assert.Contains(t, buf.String(), "quantum 3")
	assert.NotContains(t, buf.String(), "PRIORITY")
}

func TestInput(t *testing.T) {
	s := scheduler.NewArrivalSchedule()
	require.NoError(t, s.Add(3, scheduler.Process{ID: 2, BurstTime: 4, Priority: 9}))
	require.NoError(t, s.Add(0, scheduler.Process{ID: 1, BurstTime: 6, Priority: 8}))

	var buf bytes.Buffer
	Input(&buf, s, true)

	out := buf.String()
	assert.Contains(t, out, "Input processes")
	assert.Contains(t, out, "PRIORITY")
	assert.Contains(t, out, "9")
	assertRowsOrdered(t, out, "1", "2")
}

func TestStep(t *testing.T) {
	s := scheduler.NewSRTF(mustSchedule(t))
	require.True(t, s.Proceed())
	require.True(t, s.Proceed())

	var buf bytes.Buffer
	Step(&buf, s)

	assert.Equal(t, strings.Join([]string{
		"Current time: 2",
		"Current process: 2",
		"Completed processes: ",
		"Ready queue [id|time left]: [1|4]",
		"Timeline: |1[1]|2[2]|",
		"",
		"",
	}, "\n"), buf.String())
}

func TestStep_Idle(t *testing.T) {
	s := scheduler.NewFCFS(scheduler.NewArrivalSchedule())
	require.True(t, s.Proceed())

	var buf bytes.Buffer
	Step(&buf, s)
	assert.Contains(t, buf.String(), "Current process: <Idle>")
	assert.Contains(t, buf.String(), "Timeline: |<Idle>[1]|")
}

func mustSchedule(t *testing.T) *scheduler.ArrivalSchedule {
	t.Helper()
	s := scheduler.NewArrivalSchedule()
	require.NoError(t, s.Add(0, scheduler.Process{ID: 1, BurstTime: 5}))
	require.NoError(t, s.Add(1, scheduler.Process{ID: 2, BurstTime: 2}))
	return s
}

// assertRowsOrdered checks that table rows whose first cell is each id appear
// in the given order.
func assertRowsOrdered(t *testing.T, table string, ids ...string) {
	t.Helper()
	last := -1
	for _, id := range ids {
		loc := regexp.MustCompile(`(?m)^\|\s*` + id + `\s*\|`).FindStringIndex(table)
		require.NotNil(t, loc, "row %s not found", id)
		assert.Greater(t, loc[0], last, "row %s out of order", id)
		last = loc[0]
	}
}
