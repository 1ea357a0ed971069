package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshharrison/pertloom/internal/cpm"
)

const indent = "    "

// Render writes the analyzed network as a Graphviz digraph. Events are
// labeled with their identifier and earliest..latest occurrence times;
// tasks with their name, duration, total float and free float. Dummy
// tasks are dashed, critical tasks bold.
func Render(w io.Writer, s *cpm.Schedule) error {
	if _, err := fmt.Fprintf(w, "digraph PERT {\n%sgraph [rankdir = \"LR\"];\n", indent); err != nil {
		return err
	}

	for _, ev := range s.Events() {
		label := fmt.Sprintf("%d\n%d..%d", ev.Label, ev.FastestBegin, ev.LatestFinish)
		if _, err := fmt.Fprintf(w, "%s%d [label=\"%s\"]\n", indent, ev.Label, Escape(label)); err != nil {
			return err
		}
	}

	for _, t := range s.Tasks() {
		label := fmt.Sprintf("%s(%d)\nT: %d / F: %d", t.Name, t.Duration, t.TotalFloat, t.FreeFloat)
		style := ""
		switch {
		case s.IsDummy(t):
			style = ", style=dashed"
		case s.IsCritical(t):
			style = ", style=bold"
		}
		if _, err := fmt.Fprintf(w, "%s%d -> %d [label=\"%s\"%s]\n", indent, t.From, t.To, Escape(label), style); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// Escape makes label text safe inside Graphviz double-quoted labels:
// quote and backslash get a backslash prefix, and newlines become the
// \l left-justified linebreak marker.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		case '\n':
			b.WriteString(`\l`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
