// Package parser provides line tokenization and timestamp normalization for
// stat-tool log text.
package parser

import "strings"

// Row is the ordered token sequence of one input line. Rows are transient;
// they are consumed by the resolver and accumulator and then discarded.
type Row []string

// Fields splits a line on runs of whitespace into a Row.
// A blank line produces a Row with zero tokens. There is no quoting or
// escaping; grid-mode input is comma-delimited and read elsewhere.
func Fields(line string) Row {
	return strings.Fields(line)
}
