package gnuplot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"statplot/pkg/series"
)

// GridEmitter serializes a grid table as a category-axis plot script: one
// declared series per data row, with the header categories as x values.
type GridEmitter struct {
	Style
}

// NewGridEmitter creates a category-axis emitter with the given style.
func NewGridEmitter(style Style) *GridEmitter {
	return &GridEmitter{Style: style}
}

// Emit writes the complete script for table to w. Declarations follow the
// table's row order and data blocks repeat it exactly. Cells that are empty
// or missing from a short row produce no point line.
func (e *GridEmitter) Emit(w io.Writer, table *series.GridTable) error {
	bw := bufio.NewWriter(w)

	writePreamble(bw, e.Style)

	if len(table.Rows) == 0 {
		return flush(bw)
	}

	names := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		names[i] = row.Key
	}
	writePlotStatement(bw, names)

	for _, row := range table.Rows {
		for i, value := range row.Values {
			if i >= len(table.Categories) {
				break
			}
			if strings.TrimSpace(value) == "" {
				continue
			}
			fmt.Fprintf(bw, "%s %s\n", table.Categories[i], value)
		}
		fmt.Fprintln(bw, sentinel)
	}

	return flush(bw)
}
