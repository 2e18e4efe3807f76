package scheduler

// Timeline records which PCB held the processor during each unit of time.
// The unit ending at time t is stored at t, starting from 1. A nil entry
// means the processor was idle.
type Timeline struct {
	units []*ProcessControlBlock
}

type (
	TimelineEntry struct {
		Time int
		PCB  *ProcessControlBlock
	}
	// TimeSlice is a run of consecutive units held by the same process, or
	// idle. Start is inclusive and Stop exclusive in simulated time.
	TimeSlice struct {
		PID   int64
		Idle  bool
		Start int
		Stop  int
	}
)

func (tl *Timeline) add(t int, pcb *ProcessControlBlock) {
	if t != len(tl.units)+1 {
		panic("timeline: non-sequential time")
	}
	tl.units = append(tl.units, pcb)
}

// At returns the PCB that ran during the unit ending at t. ok is false when t
// is not yet recorded.
func (tl *Timeline) At(t int) (pcb *ProcessControlBlock, ok bool) {
	if t < 1 || t > len(tl.units) {
		return nil, false
	}
	return tl.units[t-1], true
}

// Len is the number of recorded units.
func (tl *Timeline) Len() int { return len(tl.units) }

func (tl *Timeline) Entries() []TimelineEntry {
	entries := make([]TimelineEntry, len(tl.units))
	for i, pcb := range tl.units {
		entries[i] = TimelineEntry{Time: i + 1, PCB: pcb}
	}
	return entries
}

// Busy counts the non-idle units.
func (tl *Timeline) Busy() int {
	var n int
	for _, pcb := range tl.units {
		if pcb != nil {
			n++
		}
	}
	return n
}

// Slices compacts the timeline into Gantt chart slices.
func (tl *Timeline) Slices() []TimeSlice {
	gantt := make([]TimeSlice, 0)
	for i, pcb := range tl.units {
		idle := pcb == nil
		var pid int64
		if !idle {
			pid = pcb.process.ID
		}
		if n := len(gantt); n > 0 && tl.units[i-1] == pcb {
			gantt[n-1].Stop = i + 1
			continue
		}
		gantt = append(gantt, TimeSlice{PID: pid, Idle: idle, Start: i, Stop: i + 1})
	}
	return gantt
}

// ContextSwitches counts the changes of running process between busy units.
// Idle gaps are skipped.
func (tl *Timeline) ContextSwitches() int {
	var (
		switches int
		last     *ProcessControlBlock
	)
	for _, pcb := range tl.units {
		if pcb == nil {
			continue
		}
		if last != nil && last != pcb {
			switches++
		}
		last = pcb
	}
	return switches
}
