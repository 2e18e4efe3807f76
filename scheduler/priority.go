package scheduler

// Priority is non-preemptive priority scheduling. Lower Process.Priority
// values are served first; a running process is never interrupted.
type Priority struct {
	core
	ready keyedQueue
}

func NewPriority(schedule *ArrivalSchedule, opts ...Option) *Priority {
	return &Priority{core: newCore(schedule, opts)}
}

func (s *Priority) Proceed() bool {
	if s.finished(s.ready.Len()) {
		return false
	}
	for _, pcb := range s.admit() {
		s.ready.push(pcb, pcb.process.Priority)
	}
	if s.idle() {
		var next *ProcessControlBlock
		if s.ready.Len() > 0 {
			next = s.ready.pop()
		}
		s.dispatch(next)
	}
	s.step()
	return true
}

func (s *Priority) ReadyQueue() []*ProcessControlBlock { return s.ready.snapshot() }
