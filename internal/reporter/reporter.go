package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joshharrison/pertloom/internal/cpm"
	"github.com/joshharrison/pertloom/internal/ui"
)

// Reporter provides terminal and JSON views of an analyzed schedule.
type Reporter struct {
	Schedule *cpm.Schedule
}

// New creates a new Reporter.
func New(s *cpm.Schedule) *Reporter {
	return &Reporter{Schedule: s}
}

// PrintReport writes a terminal-friendly schedule summary.
func (r *Reporter) PrintReport(w io.Writer) {
	s := r.Schedule

	fmt.Fprintf(w, "⏱  %s\n", ui.BoldCyan("Pertloom Schedule"))
	fmt.Fprintln(w, ui.Cyan("════════════════════"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Events:   %s (start %s, end %s)\n",
		ui.Bold(len(s.Events())), ui.BoldMagenta(s.Start), ui.BoldMagenta(s.End))
	fmt.Fprintf(w, "Tasks:    %s\n", ui.Bold(len(s.Tasks())))
	fmt.Fprintf(w, "Duration: %s units\n", ui.Bold(s.ProjectDuration))

	crit := make([]string, len(s.CriticalPath))
	for i, label := range s.CriticalPath {
		crit[i] = fmt.Sprintf("%d", label)
	}
	fmt.Fprintf(w, "⚡ Critical path: %s\n", ui.BoldYellow(strings.Join(crit, " → ")))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", ui.BoldWhite("EVENTS"))
	for _, ev := range s.Events() {
		mark := " "
		if ev.FastestBegin == ev.LatestFinish {
			mark = ui.BoldYellow("⚡")
		}
		fmt.Fprintf(w, "  %s %s  earliest %s  latest %s\n",
			mark, ui.BoldMagenta(ev.Label), ui.Bold(ev.FastestBegin), ui.Bold(ev.LatestFinish))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", ui.BoldWhite("TASKS"))
	for _, t := range s.Tasks() {
		fmt.Fprintf(w, "  %s  %d→%d  dur %s  total %d  free %d  %s\n",
			ui.Bold(t.Name), t.From, t.To,
			ui.Bold(t.Duration), t.TotalFloat, t.FreeFloat,
			ui.FloatTag(t.TotalFloat, t.Duration))
	}
}

// JSON returns a machine-readable report.
func (r *Reporter) JSON() ([]byte, error) {
	s := r.Schedule

	type eventJSON struct {
		Label        uint64 `json:"label"`
		FastestBegin int64  `json:"fastest_begin"`
		LatestFinish int64  `json:"latest_finish"`
		Critical     bool   `json:"critical"`
	}
	type taskJSON struct {
		Name       string `json:"name"`
		From       uint64 `json:"from"`
		To         uint64 `json:"to"`
		Duration   int64  `json:"duration"`
		TotalFloat int64  `json:"total_float"`
		FreeFloat  int64  `json:"free_float"`
		Critical   bool   `json:"critical"`
		Dummy      bool   `json:"dummy"`
	}

	out := struct {
		ProjectDuration int64       `json:"project_duration"`
		Start           uint64      `json:"start"`
		End             uint64      `json:"end"`
		CriticalPath    []uint64    `json:"critical_path"`
		Events          []eventJSON `json:"events"`
		Tasks           []taskJSON  `json:"tasks"`
	}{
		ProjectDuration: s.ProjectDuration,
		Start:           s.Start,
		End:             s.End,
		CriticalPath:    s.CriticalPath,
	}

	for _, ev := range s.Events() {
		out.Events = append(out.Events, eventJSON{
			Label:        ev.Label,
			FastestBegin: ev.FastestBegin,
			LatestFinish: ev.LatestFinish,
			Critical:     ev.FastestBegin == ev.LatestFinish,
		})
	}
	for _, t := range s.Tasks() {
		out.Tasks = append(out.Tasks, taskJSON{
			Name:       t.Name,
			From:       t.From,
			To:         t.To,
			Duration:   t.Duration,
			TotalFloat: t.TotalFloat,
			FreeFloat:  t.FreeFloat,
			Critical:   s.IsCritical(t),
			Dummy:      s.IsDummy(t),
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
