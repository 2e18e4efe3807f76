package scheduler

import "fmt"

// Process is a unit of work with a fixed CPU burst. Lower Priority values
// run first under the priority scheduler; other schedulers ignore it.
type Process struct {
	ID        int64
	Name      string
	BurstTime int
	Priority  int64
}

func (p Process) String() string {
	if p.Name != "" {
		return fmt.Sprintf("%d-%s", p.ID, p.Name)
	}
	return fmt.Sprint(p.ID)
}

func (p Process) validate() error {
	if p.BurstTime < 1 {
		return fmt.Errorf("%w: process %d has burst time %d", ErrInvalidProcess, p.ID, p.BurstTime)
	}
	return nil
}
