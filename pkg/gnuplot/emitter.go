package gnuplot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"statplot/pkg/series"
)

// ScriptEmitter serializes a series collection as a time-axis plot script.
// Emission is deterministic: the same collection and style always produce
// byte-identical output.
type ScriptEmitter struct {
	Style
}

// NewScriptEmitter creates a time-axis emitter with the given style.
func NewScriptEmitter(style Style) *ScriptEmitter {
	return &ScriptEmitter{Style: style}
}

// Emit writes the complete script for coll to w. The x axis is time-typed
// and points carry epoch-second timestamps, so timefmt is '%s'. Points with
// blank values produce no data line.
func (e *ScriptEmitter) Emit(w io.Writer, coll *series.Collection) error {
	bw := bufio.NewWriter(w)

	writePreamble(bw, e.Style)

	fmt.Fprintln(bw, "set xdata time")
	bw.WriteString("set timefmt '%s'\n")
	fmt.Fprintf(bw, "set format x '%s'\n", timeFormat)
	fmt.Fprintf(bw, "set xtics %d\n", tickSeconds)

	keys := coll.Keys()
	if len(keys) == 0 {
		// Nothing resolved. The preamble alone is still a valid script.
		return flush(bw)
	}
	writePlotStatement(bw, keys)

	for _, key := range keys {
		for _, p := range coll.Get(key).Points {
			if strings.TrimSpace(p.Value) == "" {
				continue
			}
			fmt.Fprintf(bw, "%d %s\n", p.Timestamp, p.Value)
		}
		fmt.Fprintln(bw, sentinel)
	}

	return flush(bw)
}
