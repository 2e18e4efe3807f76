package scheduler

// FCFS runs processes to completion in arrival order.
type FCFS struct {
	core
	ready fifoQueue
}

func NewFCFS(schedule *ArrivalSchedule, opts ...Option) *FCFS {
	return &FCFS{core: newCore(schedule, opts)}
}

func (s *FCFS) Proceed() bool {
	if s.finished(s.ready.Len()) {
		return false
	}
	for _, pcb := range s.admit() {
		s.ready.push(pcb)
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

func (s *FCFS) ReadyQueue() []*ProcessControlBlock { return s.ready.snapshot() }
