// Package gnuplot serializes series data into gnuplot's scripted protocol
// and runs the engine as a subprocess.
//
// The protocol is order-sensitive: all series declarations appear in one
// plot statement, then one inline data block per series in the same order,
// each terminated by the "e" sentinel. Gnuplot renders silently wrong
// output when the orders diverge, so both emitters iterate the same key
// sequence for declarations and data.
package gnuplot

import (
	"bufio"
	"fmt"
	"strings"
)

// Fixed canvas and time-axis parameters. A fixed xtics interval avoids the
// axis-label overlap some terminal/size combinations produce with gnuplot's
// autoticks.
const (
	canvasWidth  = 1200
	canvasHeight = 800
	timeFormat   = "%H:%M:%S"
	tickSeconds  = 3600

	// sentinel terminates one series' inline data.
	sentinel = "e"
)

// DefaultTerminal is used when Style leaves the terminal unset.
const DefaultTerminal = "qt"

// Style carries the presentation settings shared by both emitters.
type Style struct {
	// Title is the chart title.
	Title string

	// YLabel labels the value axis.
	YLabel string

	// Terminal selects the gnuplot terminal, DefaultTerminal when empty.
	Terminal string

	// OutputFile, when set, adds a "set output" directive so file
	// terminals such as png write there.
	OutputFile string
}

func (s Style) terminal() string {
	if s.Terminal == "" {
		return DefaultTerminal
	}
	return s.Terminal
}

// writePreamble emits the canvas, grid, legend, title and axis-label
// directives common to both axis modes.
func writePreamble(w *bufio.Writer, s Style) {
	fmt.Fprintf(w, "set terminal %s size %d,%d\n", s.terminal(), canvasWidth, canvasHeight)
	if s.OutputFile != "" {
		fmt.Fprintf(w, "set output '%s'\n", s.OutputFile)
	}
	fmt.Fprintln(w, "set grid")
	fmt.Fprintln(w, "set key outside right top")
	fmt.Fprintf(w, "set title '%s'\n", s.Title)
	fmt.Fprintf(w, "set ylabel '%s'\n", s.YLabel)
}

// writePlotStatement emits the single plot statement declaring every series
// in order, comma-separated with no trailing comma.
func writePlotStatement(w *bufio.Writer, names []string) {
	clauses := make([]string, len(names))
	for i, name := range names {
		clauses[i] = fmt.Sprintf("'-' using 1:2 title '%s' with lines", name)
	}
	fmt.Fprintf(w, "plot %s\n", strings.Join(clauses, ", "))
}

// flush propagates the first write error bufio recorded, naming the sink.
func flush(w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing plot script: %w", err)
	}
	return nil
}
