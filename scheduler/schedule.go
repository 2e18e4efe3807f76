package scheduler

import (
	"fmt"
	"sort"
)

// ArrivalSchedule maps arrival times to the processes arriving at that time,
// preserving insertion order within each time.
type ArrivalSchedule struct {
	arrivals map[int][]Process
	endTime  int
	count    int
}

// Arrival pairs a process with the time it arrives.
type Arrival struct {
	Time    int
	Process Process
}

func NewArrivalSchedule() *ArrivalSchedule {
	return &ArrivalSchedule{arrivals: make(map[int][]Process)}
}

// Add schedules p to arrive at arrivalTime.
func (s *ArrivalSchedule) Add(arrivalTime int, p Process) error {
	return s.AddAll(arrivalTime, p)
}

// AddAll schedules every process in ps to arrive at arrivalTime. Nothing is
// added if any process is invalid.
func (s *ArrivalSchedule) AddAll(arrivalTime int, ps ...Process) error {
	if arrivalTime < 0 {
		return fmt.Errorf("%w: negative arrival time %d", ErrInvalidProcess, arrivalTime)
	}
	for _, p := range ps {
		if err := p.validate(); err != nil {
			return err
		}
	}
	if len(ps) == 0 {
		return nil
	}
	if s.arrivals == nil {
		s.arrivals = make(map[int][]Process)
	}
	if arrivalTime > s.endTime {
		s.endTime = arrivalTime
	}
	s.arrivals[arrivalTime] = append(s.arrivals[arrivalTime], ps...)
	s.count += len(ps)
	return nil
}

// ArrivedAt returns the processes arriving at time t, or nil.
func (s *ArrivalSchedule) ArrivedAt(t int) []Process {
	return s.arrivals[t]
}

// EndTime is the latest arrival time in the schedule.
func (s *ArrivalSchedule) EndTime() int { return s.endTime }

// Len is the number of processes in the schedule.
func (s *ArrivalSchedule) Len() int { return s.count }

// Entries lists every arrival ordered by time, then insertion order.
func (s *ArrivalSchedule) Entries() []Arrival {
	times := make([]int, 0, len(s.arrivals))
	for t := range s.arrivals {
		times = append(times, t)
	}
	sort.Ints(times)

	entries := make([]Arrival, 0, s.count)
	for _, t := range times {
		for _, p := range s.arrivals[t] {
			entries = append(entries, Arrival{Time: t, Process: p})
		}
	}
	return entries
}
