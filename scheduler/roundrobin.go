package scheduler

import (
	"fmt"
	"log/slog"
)

// RoundRobin serves the ready queue in FIFO order, preempting the running
// process after it has used a full time quantum.
type RoundRobin struct {
	core
	ready   fifoQueue
	quantum int

	// offset counts the units the current process has run since dispatch.
	offset int
}

// NewRoundRobin returns a round robin scheduler with the given time quantum.
// A quantum of 1 makes every unit a potential switch.
func NewRoundRobin(schedule *ArrivalSchedule, quantum int, opts ...Option) (*RoundRobin, error) {
	if quantum < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	return &RoundRobin{core: newCore(schedule, opts), quantum: quantum}, nil
}

func (s *RoundRobin) Quantum() int { return s.quantum }

func (s *RoundRobin) Proceed() bool {
	if s.finished(s.ready.Len()) {
		return false
	}
	for _, pcb := range s.admit() {
		s.ready.push(pcb)
	}

	// Requeue after admission so new arrivals go ahead of the expired process.
	expired := s.offset == s.quantum
	if expired && !s.idle() {
		s.log.Debug("time quantum expired",
			slog.Int64("pid", s.current.process.ID),
			slog.Int("time", s.now),
			slog.Int("time_left", s.current.timeLeft),
		)
		s.ready.push(s.current)
	}
	if expired || s.idle() {
		var next *ProcessControlBlock
		if s.ready.Len() > 0 {
			next = s.ready.pop()
		}
		s.dispatch(next)
		s.offset = 0
	}

	s.step()
	s.offset++
	return true
}

func (s *RoundRobin) ReadyQueue() []*ProcessControlBlock { return s.ready.snapshot() }
