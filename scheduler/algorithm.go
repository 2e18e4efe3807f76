package scheduler

import (
	"fmt"
	"strings"
)

type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmSRTF       Algorithm = "srtf"
	AlgorithmRoundRobin Algorithm = "rr"
	AlgorithmPriority   Algorithm = "priority"
)

var titles = map[Algorithm]string{
	AlgorithmFCFS:       "First-come, first-serve",
	AlgorithmSJF:        "Shortest Job First (non-preemptive)",
	AlgorithmSRTF:       "Shortest Remaining Time First (preemptive)",
	AlgorithmRoundRobin: "Round-Robin (preemptive)",
	AlgorithmPriority:   "Priority (non-preemptive)",
}

var aliases = map[string]Algorithm{
	"fifo":        AlgorithmFCFS,
	"srt":         AlgorithmSRTF,
	"roundrobin":  AlgorithmRoundRobin,
	"round-robin": AlgorithmRoundRobin,
}

// Algorithms lists every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmSRTF, AlgorithmRoundRobin, AlgorithmPriority}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if _, ok := titles[Algorithm(name)]; ok {
		return Algorithm(name), nil
	}
	if a, ok := aliases[name]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) Title() string {
	if t, ok := titles[a]; ok {
		return t
	}
	return string(a)
}

// New builds the scheduler for algorithm a. quantum is only used by round
// robin.
func New(a Algorithm, schedule *ArrivalSchedule, quantum int, opts ...Option) (Scheduler, error) {
	switch a {
	case AlgorithmFCFS:
		return NewFCFS(schedule, opts...), nil
	case AlgorithmSJF:
		return NewSJF(schedule, opts...), nil
	case AlgorithmSRTF:
		return NewSRTF(schedule, opts...), nil
	case AlgorithmRoundRobin:
		return NewRoundRobin(schedule, quantum, opts...)
	case AlgorithmPriority:
		return NewPriority(schedule, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
}
