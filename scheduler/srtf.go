package scheduler

import "log/slog"

// SRTF is preemptive shortest remaining time first. Every unit the running
// process competes again with the ready queue on its remaining time.
type SRTF struct {
	core
	ready keyedQueue
}

func NewSRTF(schedule *ArrivalSchedule, opts ...Option) *SRTF {
	return &SRTF{core: newCore(schedule, opts)}
}

func (s *SRTF) Proceed() bool {
	if s.finished(s.ready.Len()) {
		return false
	}
	for _, pcb := range s.admit() {
		s.ready.push(pcb, int64(pcb.timeLeft))
	}

	prev := s.current
	if !s.idle() {
		s.ready.push(prev, int64(prev.timeLeft))
	}

	var next *ProcessControlBlock
	if s.ready.Len() > 0 {
		next = s.ready.pop()
	}
	if prev != nil && !prev.Complete() && next != prev {
		s.log.Debug("process preempted",
			slog.Int64("pid", prev.process.ID),
			slog.Int("time", s.now),
			slog.Int("time_left", prev.timeLeft),
		)
	}
	s.dispatch(next)
	s.step()
	return true
}

func (s *SRTF) ReadyQueue() []*ProcessControlBlock { return s.ready.snapshot() }
