package scheduler

import "fmt"

// ProcessControlBlock holds the execution state of one Process for a single
// simulation run.
type ProcessControlBlock struct {
	process      Process
	arrivalTime  int
	timeLeft     int
	firstCPUTime int
	started      bool

	// seq is the admission order, used to break ties in keyed queues.
	seq int
}

func newProcessControlBlock(p Process, arrivalTime, seq int) *ProcessControlBlock {
	return &ProcessControlBlock{
		process:     p,
		arrivalTime: arrivalTime,
		timeLeft:    p.BurstTime,
		seq:         seq,
	}
}

func (pcb *ProcessControlBlock) Process() Process { return pcb.process }
func (pcb *ProcessControlBlock) ArrivalTime() int { return pcb.arrivalTime }
func (pcb *ProcessControlBlock) TimeLeft() int    { return pcb.timeLeft }
func (pcb *ProcessControlBlock) Complete() bool   { return pcb.timeLeft == 0 }

// FirstCPUTime reports when the process was first executed. ok is false if it
// never ran.
func (pcb *ProcessControlBlock) FirstCPUTime() (t int, ok bool) {
	return pcb.firstCPUTime, pcb.started
}

// Execute runs the process for one unit of time starting at now.
func (pcb *ProcessControlBlock) Execute(now int) error {
	if pcb.Complete() {
		return fmt.Errorf("%w: cannot execute completed process %d", ErrInvalidOperation, pcb.process.ID)
	}
	if !pcb.started {
		pcb.firstCPUTime = now
		pcb.started = true
	}
	pcb.timeLeft--
	return nil
}
