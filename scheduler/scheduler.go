package scheduler

import (
	"io"
	"log/slog"
)

// Scheduler advances a single-processor simulation one unit of time per call
// to Proceed. Implementations differ only in ready queue discipline and
// preemption rule.
type Scheduler interface {
	// Proceed runs one unit of time. It returns false, without changing any
	// state, once no process is running or waiting and no more can arrive.
	Proceed() bool
	// Now is the number of units simulated so far.
	Now() int
	// CurrentProcess is the PCB that ran during the last unit, nil if idle.
	CurrentProcess() *ProcessControlBlock
	// CompletedProcesses lists finished processes in completion order.
	CompletedProcesses() []CompletedProcess
	Timeline() *Timeline
	// ReadyQueue is a snapshot of the waiting PCBs, next to run first.
	ReadyQueue() []*ProcessControlBlock
}

var (
	_ Scheduler = (*FCFS)(nil)
	_ Scheduler = (*SJF)(nil)
	_ Scheduler = (*SRTF)(nil)
	_ Scheduler = (*RoundRobin)(nil)
	_ Scheduler = (*Priority)(nil)
)

type Option func(*core)

// WithLogger sets the logger scheduling events are written to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *core) {
		if l != nil {
			c.log = l
		}
	}
}

// core is the state shared by every scheduler: the clock, the running PCB,
// the timeline and the completed list.
type core struct {
	schedule  *ArrivalSchedule
	now       int
	current   *ProcessControlBlock
	timeline  Timeline
	completed []CompletedProcess
	admitted  int
	log       *slog.Logger
}

func newCore(schedule *ArrivalSchedule, opts []Option) core {
	if schedule == nil {
		schedule = NewArrivalSchedule()
	}
	c := core{
		schedule: schedule,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c *core) Now() int                             { return c.now }
func (c *core) CurrentProcess() *ProcessControlBlock { return c.current }
func (c *core) Timeline() *Timeline                  { return &c.timeline }

func (c *core) CompletedProcesses() []CompletedProcess {
	return append([]CompletedProcess(nil), c.completed...)
}

// idle reports whether the processor is free for the next unit.
func (c *core) idle() bool {
	return c.current == nil || c.current.Complete()
}

func (c *core) finished(waiting int) bool {
	return c.idle() && waiting == 0 && c.now > c.schedule.EndTime()
}

// admit creates PCBs for the processes arriving at the current time.
func (c *core) admit() []*ProcessControlBlock {
	if c.now > c.schedule.EndTime() {
		return nil
	}
	arrived := c.schedule.ArrivedAt(c.now)
	pcbs := make([]*ProcessControlBlock, len(arrived))
	for i, p := range arrived {
		pcbs[i] = newProcessControlBlock(p, c.now, c.admitted)
		c.admitted++
		c.log.Debug("process admitted",
			slog.Int64("pid", p.ID),
			slog.Int("time", c.now),
			slog.Int("burst", p.BurstTime),
		)
	}
	return pcbs
}

func (c *core) dispatch(pcb *ProcessControlBlock) {
	if pcb != nil && pcb != c.current {
		c.log.Debug("process dispatched",
			slog.Int64("pid", pcb.process.ID),
			slog.Int("time", c.now),
			slog.Int("time_left", pcb.timeLeft),
		)
	}
	c.current = pcb
}

// step executes the current PCB for one unit, advances the clock and records
// the unit. Errors here mean the scheduler broke its own invariants.
func (c *core) step() {
	if c.current != nil {
		if err := c.current.Execute(c.now); err != nil {
			panic(err)
		}
	}
	c.now++
	c.timeline.add(c.now, c.current)

	if c.current == nil || !c.current.Complete() {
		return
	}
	done, err := NewCompletedProcess(c.current, c.now)
	if err != nil {
		panic(err)
	}
	c.completed = append(c.completed, done)
	c.log.Debug("process completed",
		slog.Int64("pid", done.Process.ID),
		slog.Int("time", c.now),
		slog.Int("turnaround", done.TurnaroundTime()),
	)
}

// Run calls Proceed until the scheduler is finished and returns the number
// of units simulated.
func Run(s Scheduler) int {
	var steps int
	for s.Proceed() {
		steps++
	}
	return steps
}
