package simulation

import (
	"github.com/nluthra2001/cpusched/scheduler"
)

type (
	Report struct {
		Algorithm string   `json:"algorithm"`
		Title     string   `json:"title"`
		Quantum   int      `json:"quantum,omitempty"`
		Timeline  []Unit   `json:"timeline"`
		Gantt     []Slice  `json:"gantt"`
		Processes []Result `json:"processes"`
		Stats     Stats    `json:"stats"`
	}
	// Unit is one unit of simulated time ending at Time.
	Unit struct {
		Time int   `json:"time"`
		PID  int64 `json:"pid"`
		Idle bool  `json:"idle,omitempty"`
	}
	Slice struct {
		PID   int64 `json:"pid"`
		Idle  bool  `json:"idle,omitempty"`
		Start int   `json:"start"`
		Stop  int   `json:"stop"`
	}
	// Result holds the timing of one completed process.
	Result struct {
		ID         int64  `json:"id"`
		Name       string `json:"name,omitempty"`
		Priority   int64  `json:"priority"`
		Burst      int    `json:"burst"`
		Arrival    int    `json:"arrival"`
		Completion int    `json:"completion"`
		Turnaround int    `json:"turnaround"`
		Wait       int    `json:"wait"`
		Response   int    `json:"response"`
	}
	Stats struct {
		Count             int     `json:"count"`
		AverageTurnaround float64 `json:"average_turnaround"`
		AverageWait       float64 `json:"average_wait"`
		AverageResponse   float64 `json:"average_response"`
		Throughput        float64 `json:"throughput"`
		Makespan          int     `json:"makespan"`
		Utilization       float64 `json:"utilization"`
		ContextSwitches   int     `json:"context_switches"`
	}
	AlgorithmInfo struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	ErrorResponse struct {
		Error string `json:"error"`
	}
)

// Algorithms describes every scheduler the simulator offers.
func Algorithms() []AlgorithmInfo {
	algs := scheduler.Algorithms()
	infos := make([]AlgorithmInfo, len(algs))
	for i, a := range algs {
		infos[i] = AlgorithmInfo{Name: string(a), Title: a.Title()}
	}
	return infos
}

// NewReport captures the state of a scheduler, normally after it finished.
// Processes are listed in completion order.
func NewReport(alg scheduler.Algorithm, quantum int, s scheduler.Scheduler) Report {
	r := Report{
		Algorithm: string(alg),
		Title:     alg.Title(),
		Timeline:  make([]Unit, 0, s.Timeline().Len()),
		Gantt:     make([]Slice, 0),
	}
	if alg == scheduler.AlgorithmRoundRobin {
		r.Quantum = quantum
	}

	for _, e := range s.Timeline().Entries() {
		u := Unit{Time: e.Time, Idle: e.PCB == nil}
		if e.PCB != nil {
			u.PID = e.PCB.Process().ID
		}
		r.Timeline = append(r.Timeline, u)
	}
	for _, ts := range s.Timeline().Slices() {
		r.Gantt = append(r.Gantt, Slice{PID: ts.PID, Idle: ts.Idle, Start: ts.Start, Stop: ts.Stop})
	}

	completed := s.CompletedProcesses()
	r.Processes = make([]Result, len(completed))
	for i, c := range completed {
		r.Processes[i] = Result{
			ID:         c.Process.ID,
			Name:       c.Process.Name,
			Priority:   c.Process.Priority,
			Burst:      c.Process.BurstTime,
			Arrival:    c.ArrivalTime,
			Completion: c.CompletionTime,
			Turnaround: c.TurnaroundTime(),
			Wait:       c.WaitTime(),
			Response:   c.ResponseTime(),
		}
	}

	r.Stats = Summarize(completed, s.Now())
	r.Stats.ContextSwitches = s.Timeline().ContextSwitches()
	if s.Now() > 0 {
		r.Stats.Utilization = float64(s.Timeline().Busy()) / float64(s.Now())
	}
	return r
}

// Summarize averages the timings of completed processes. Throughput is
// processes per unit of time up to the last completion.
func Summarize(completed []scheduler.CompletedProcess, makespan int) Stats {
	st := Stats{Count: len(completed), Makespan: makespan}
	if len(completed) == 0 {
		return st
	}

	var (
		totalTurnaround, totalWait, totalResponse float64
		lastCompletion                            int
	)
	for _, c := range completed {
		totalTurnaround += float64(c.TurnaroundTime())
		totalWait += float64(c.WaitTime())
		totalResponse += float64(c.ResponseTime())
		if c.CompletionTime > lastCompletion {
			lastCompletion = c.CompletionTime
		}
	}

	count := float64(len(completed))
	st.AverageTurnaround = totalTurnaround / count
	st.AverageWait = totalWait / count
	st.AverageResponse = totalResponse / count
	st.Throughput = count / float64(lastCompletion)
	return st
}
