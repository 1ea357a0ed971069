package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// PrintLogo renders the colored pertloom logo to stderr.
func PrintLogo() {
	w := os.Stderr
	frame := color.New(color.FgCyan)
	nodes := color.New(color.FgYellow)
	sep := color.New(color.FgCyan)
	brand := color.New(color.Bold, color.FgMagenta)
	tag := color.New(color.Faint)

	fmt.Fprintln(w)
	frame.Fprintln(w, "   +--------------------------+")
	nodes.Fprintln(w, "   |  o-->o-->o-->o-->o-->o   |")
	sep.Fprintln(w, "   |==========================|")
	brand.Fprintln(w, "   |  P  E  R  T  L  O  O  M  |")
	sep.Fprintln(w, "   |==========================|")
	nodes.Fprintln(w, "   |   o-->o-->o-->o-->o-->o  |")
	frame.Fprintln(w, "   +--------------------------+")
	tag.Fprintf(w, "   %s Critical path scheduling\n", Dim("⏱"))
	fmt.Fprintln(w)
}

// FloatTag returns a colored marker for a task's slack: a bold
// lightning bolt for critical tasks, a dim dash for dummy edges, and
// the plain slack value otherwise.
func FloatTag(totalFloat, duration int64) string {
	switch {
	case totalFloat == 0:
		return BoldYellow("⚡ critical")
	case duration == 0:
		return Dim("dummy")
	default:
		return Dim(fmt.Sprintf("slack %d", totalFloat))
	}
}
