// Package resolver locates the header line in loosely structured stat-tool
// output and resolves the target data column from either an explicit column
// number or a label name.
package resolver

import (
	"fmt"
	"log/slog"
	"strings"

	"statplot/pkg/parser"
)

// State tracks header and column resolution progress.
type State int

const (
	// Unresolved means the header signal has not been seen yet.
	Unresolved State = iota

	// LabelsKnown means the header line was found and its labels frozen,
	// but the target column is not yet identified.
	LabelsKnown

	// ColumnKnown means the target column index is fixed for the rest of
	// the run.
	ColumnKnown
)

// Resolver is the per-run header and column state machine. It transitions
// Unresolved -> LabelsKnown on the first line containing the header signal,
// and LabelsKnown -> ColumnKnown once the target column is identified.
// Both labels and column are frozen once set; repeated header lines, as
// printed periodically by tools like iostat and sar, are ignored.
type Resolver struct {
	signal string
	target string // label requested by the caller, if any
	column int    // 1-based data-column number requested by the caller, 0 if unset

	state    State
	labels   parser.Row
	colIndex int    // resolved token index into a Row
	label    string // display label for the resolved column

	log *slog.Logger
}

// New creates a Resolver for one conversion run.
// signal is the substring that identifies the header line. Exactly one of
// label or column selects the target: a non-empty label is matched against
// the header labels, a column > 0 is taken as a 1-based data-column number
// (data columns start after the two timestamp tokens).
func New(signal, label string, column int, logger *slog.Logger) (*Resolver, error) {
	if signal == "" {
		return nil, fmt.Errorf("header signal is required")
	}
	if label == "" && column <= 0 {
		return nil, fmt.Errorf("either a column number or a label is required (signal %q)", signal)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		signal: signal,
		target: label,
		column: column,
		log:    logger,
	}, nil
}

// Observe feeds one line through the state machine. It never fails: lines
// that do not advance resolution are simply ignored.
func (r *Resolver) Observe(line string, row parser.Row) {
	if r.state != Unresolved {
		// Labels are frozen from the first header line; later header
		// lines are no-ops.
		return
	}
	if !strings.Contains(line, r.signal) {
		return
	}

	if len(row) > parser.TimestampTokens {
		r.labels = append(parser.Row(nil), row[parser.TimestampTokens:]...)
	}
	r.state = LabelsKnown
	r.log.Debug("header labels frozen", "signal", r.signal, "labels", []string(r.labels))

	r.resolveColumn()
}

// resolveColumn performs the LabelsKnown -> ColumnKnown transition. With an
// explicit column number the index is adopted directly and the display label
// is derived from the header when available; with a label the header is
// scanned for an exact match. A label absent from the header leaves the
// resolver in LabelsKnown for the rest of the run.
func (r *Resolver) resolveColumn() {
	if r.column > 0 {
		r.colIndex = r.column - 1 + parser.TimestampTokens
		r.label = r.target
		if r.label == "" && r.column-1 < len(r.labels) {
			r.label = r.labels[r.column-1]
		}
		r.state = ColumnKnown
		r.log.Debug("column resolved from number", "column", r.column, "index", r.colIndex, "label", r.label)
		return
	}

	for i, l := range r.labels {
		if l == r.target {
			r.colIndex = i + parser.TimestampTokens
			r.label = l
			r.state = ColumnKnown
			r.log.Debug("column resolved from label", "label", l, "index", r.colIndex)
			return
		}
	}

	r.log.Debug("label not present in header", "label", r.target, "labels", []string(r.labels))
}

// State returns the current resolution state.
func (r *Resolver) State() State {
	return r.state
}

// Resolved reports whether the target column index is known.
func (r *Resolver) Resolved() bool {
	return r.state == ColumnKnown
}

// ColumnIndex returns the resolved token index. Valid only once Resolved.
func (r *Resolver) ColumnIndex() int {
	return r.colIndex
}

// Label returns the display label for the resolved column, which may be
// empty when an explicit column number pointed past the header labels.
func (r *Resolver) Label() string {
	return r.label
}

// Labels returns the frozen header labels, nil before the header is seen.
func (r *Resolver) Labels() []string {
	return r.labels
}

// IsHeader reports whether a line carries the header signal. Such lines are
// routed to Observe only and never treated as data, so periodically repeated
// headers cannot leak into a series.
func (r *Resolver) IsHeader(line string) bool {
	return strings.Contains(line, r.signal)
}
