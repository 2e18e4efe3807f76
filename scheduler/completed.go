package scheduler

import "fmt"

// CompletedProcess is the record of a process that finished execution.
type CompletedProcess struct {
	Process        Process
	ArrivalTime    int
	CompletionTime int
	FirstCPUTime   int
}

// NewCompletedProcess converts a finished PCB into a CompletedProcess stamped
// with completionTime.
func NewCompletedProcess(pcb *ProcessControlBlock, completionTime int) (CompletedProcess, error) {
	if !pcb.Complete() {
		return CompletedProcess{}, fmt.Errorf("%w: process %d is incomplete", ErrInvalidOperation, pcb.process.ID)
	}
	return CompletedProcess{
		Process:        pcb.process,
		ArrivalTime:    pcb.arrivalTime,
		CompletionTime: completionTime,
		FirstCPUTime:   pcb.firstCPUTime,
	}, nil
}

func (c CompletedProcess) TurnaroundTime() int { return c.CompletionTime - c.ArrivalTime }
func (c CompletedProcess) WaitTime() int       { return c.TurnaroundTime() - c.Process.BurstTime }
func (c CompletedProcess) ResponseTime() int   { return c.FirstCPUTime - c.ArrivalTime }
