package simulation

import (
	"fmt"

	"github.com/nluthra2001/cpusched/scheduler"
)

// Limits on what a single request may simulate.
const (
	MaxProcesses = 1000
	MaxTime      = 100_000
)

type (
	ProcessSpec struct {
		ID       int64  `json:"id"`
		Name     string `json:"name,omitempty"`
		Arrival  int    `json:"arrival"`
		Burst    int    `json:"burst"`
		Priority int64  `json:"priority,omitempty"`
	}
	Request struct {
		Algorithm string        `json:"algorithm"`
		Quantum   int           `json:"quantum,omitempty"`
		Processes []ProcessSpec `json:"processes"`
	}
)

// SpecsFromSchedule lists the processes of a schedule in arrival order.
func SpecsFromSchedule(s *scheduler.ArrivalSchedule) []ProcessSpec {
	entries := s.Entries()
	specs := make([]ProcessSpec, len(entries))
	for i, e := range entries {
		specs[i] = ProcessSpec{
			ID:       e.Process.ID,
			Name:     e.Process.Name,
			Arrival:  e.Time,
			Burst:    e.Process.BurstTime,
			Priority: e.Process.Priority,
		}
	}
	return specs
}

// Validate checks the request can be simulated. The returned error wraps
// ErrInvalidRequest or one of the scheduler package errors.
func (r Request) Validate() error {
	if _, err := scheduler.ParseAlgorithm(r.Algorithm); err != nil {
		return err
	}
	if r.Quantum < 0 {
		return fmt.Errorf("%w: %d", scheduler.ErrInvalidQuantum, r.Quantum)
	}
	if len(r.Processes) > MaxProcesses {
		return fmt.Errorf("%w: %d processes exceeds the limit of %d", ErrInvalidRequest, len(r.Processes), MaxProcesses)
	}

	ids := make(map[int64]bool, len(r.Processes))
	lastArrival, totalBurst := 0, 0
	for _, p := range r.Processes {
		if ids[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidRequest, p.ID)
		}
		ids[p.ID] = true
		if p.Arrival > MaxTime || p.Burst > MaxTime {
			return fmt.Errorf("%w: process %d exceeds the time limit of %d", ErrInvalidRequest, p.ID, MaxTime)
		}
		lastArrival = max(lastArrival, p.Arrival)
		totalBurst += max(0, p.Burst)
	}
	// No schedule runs longer than its last arrival plus all of its bursts.
	if lastArrival+totalBurst > MaxTime {
		return fmt.Errorf("%w: %d units to simulate exceeds the time limit of %d", ErrInvalidRequest, lastArrival+totalBurst, MaxTime)
	}
	return nil
}

// Schedule builds the arrival schedule described by the request, keeping the
// order of Processes within each arrival time.
func (r Request) Schedule() (*scheduler.ArrivalSchedule, error) {
	s := scheduler.NewArrivalSchedule()
	for _, p := range r.Processes {
		err := s.Add(p.Arrival, scheduler.Process{
			ID:        p.ID,
			Name:      p.Name,
			BurstTime: p.Burst,
			Priority:  p.Priority,
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// quantum is the round robin time quantum, 1 when unset.
func (r Request) quantum() int {
	if r.Quantum == 0 {
		return 1
	}
	return r.Quantum
}
