package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nluthra2001/cpusched/internal/simulation"
	"github.com/nluthra2001/cpusched/scheduler"
)

const (
	idleLabel   = "<Idle>"
	titleMargin = 4
)

// Report writes the title, Gantt chart and schedule table of a finished
// simulation.
func Report(w io.Writer, r simulation.Report) {
	title := r.Title
	if r.Quantum > 0 {
		title = fmt.Sprintf("%s, quantum %d", title, r.Quantum)
	}
	Title(w, title)
	Gantt(w, r.Gantt)
	Schedule(w, r)
}

// Title writes title between two rules that overhang it by titleMargin.
// Multi-line titles are aligned on their longest line.
func Title(w io.Writer, title string) {
	lines := strings.Split(title, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	rule := strings.Repeat("-", width+2*titleMargin)
	indent := strings.Repeat(" ", titleMargin)

	_, _ = fmt.Fprintln(w, rule)
	for _, l := range lines {
		_, _ = fmt.Fprint(w, indent, l, "\n")
	}
	_, _ = fmt.Fprintln(w, rule)
}

func Gantt(w io.Writer, gantt []simulation.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		label := sliceLabel(gantt[i])
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule writes one row per completed process, ordered by id, with the
// averages in the footer. The priority column only shows for the priority
// scheduler.
func Schedule(w io.Writer, r simulation.Report) {
	withPriority := r.Algorithm == string(scheduler.AlgorithmPriority)

	results := append([]simulation.Result(nil), r.Processes...)
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	rows := make([][]string, len(results))
	for i, p := range results {
		row := []string{fmt.Sprint(p.ID), fmt.Sprint(p.Burst), fmt.Sprint(p.Arrival)}
		if withPriority {
			row = append(row, fmt.Sprint(p.Priority))
		}
		rows[i] = append(row,
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Wait),
			fmt.Sprint(p.Response),
		)
	}

	header := []string{"ID", "Burst", "Arrival"}
	footer := []string{"", "", ""}
	if withPriority {
		header = append(header, "Priority")
		footer = append(footer, "")
	}
	header = append(header, "Exit", "Turnaround", "Wait", "Response")
	footer = append(footer,
		fmt.Sprintf("Throughput\n%.2f/t", r.Stats.Throughput),
		fmt.Sprintf("Average\n%.2f", r.Stats.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", r.Stats.AverageWait),
		fmt.Sprintf("Average\n%.2f", r.Stats.AverageResponse),
	)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
	_, _ = fmt.Fprintf(w, "Context switches: %d, utilization: %.0f%%\n\n", r.Stats.ContextSwitches, r.Stats.Utilization*100)
}

// Input writes the processes of a schedule ordered by id.
func Input(w io.Writer, schedule *scheduler.ArrivalSchedule, withPriority bool) {
	entries := schedule.Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Process.ID < entries[j].Process.ID })

	header := []string{"Process ID", "Arrival Time", "Burst Time"}
	if withPriority {
		header = append(header, "Priority")
	}

	_, _ = fmt.Fprintln(w, "Input processes")
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, e := range entries {
		row := []string{fmt.Sprint(e.Process.ID), fmt.Sprint(e.Time), fmt.Sprint(e.Process.BurstTime)}
		if withPriority {
			row = append(row, fmt.Sprint(e.Process.Priority))
		}
		table.Append(row)
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Step writes the state of a scheduler after a call to Proceed.
func Step(w io.Writer, s scheduler.Scheduler) {
	current := idleLabel
	if pcb := s.CurrentProcess(); pcb != nil {
		current = fmt.Sprint(pcb.Process().ID)
	}

	completed := make([]string, 0)
	for _, c := range s.CompletedProcesses() {
		completed = append(completed, fmt.Sprint(c.Process.ID))
	}

	var ready strings.Builder
	for _, pcb := range s.ReadyQueue() {
		_, _ = fmt.Fprintf(&ready, "[%d|%d]", pcb.Process().ID, pcb.TimeLeft())
	}

	var timeline strings.Builder
	timeline.WriteString("|")
	for _, e := range s.Timeline().Entries() {
		label := idleLabel
		if e.PCB != nil {
			label = fmt.Sprint(e.PCB.Process().ID)
		}
		_, _ = fmt.Fprintf(&timeline, "%s[%d]|", label, e.Time)
	}

	_, _ = fmt.Fprintf(w, "Current time: %d\n", s.Now())
	_, _ = fmt.Fprintf(w, "Current process: %s\n", current)
	_, _ = fmt.Fprintf(w, "Completed processes: %s\n", strings.Join(completed, ","))
	_, _ = fmt.Fprintf(w, "Ready queue [id|time left]: %s\n", ready.String())
	_, _ = fmt.Fprintf(w, "Timeline: %s\n\n", timeline.String())
}

func sliceLabel(s simulation.Slice) string {
	if s.Idle {
		return idleLabel
	}
	return fmt.Sprint(s.PID)
}
