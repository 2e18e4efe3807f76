package scheduler

// SJF is non-preemptive shortest job first: when the processor frees up, the
// waiting process with the smallest total burst time runs to completion.
type SJF struct {
	core
	ready keyedQueue
}

func NewSJF(schedule *ArrivalSchedule, opts ...Option) *SJF {
	return &SJF{core: newCore(schedule, opts)}
}

func (s *SJF) Proceed() bool {
	if s.finished(s.ready.Len()) {
		return false
	}
	for _, pcb := range s.admit() {
		s.ready.push(pcb, int64(pcb.process.BurstTime))
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

func (s *SJF) ReadyQueue() []*ProcessControlBlock { return s.ready.snapshot() }
