package series

import (
	"fmt"
	"log/slog"
	"strings"

	"statplot/pkg/parser"
)

// TimestampFunc converts a row's leading date/time tokens to epoch seconds.
// parser.EpochSeconds is the production implementation.
type TimestampFunc func(parser.Row) (int64, error)

// Accumulator filters resolved data rows into the named series of one run.
//
// With filter terms configured, a row is assigned to the series keyed by the
// first term its raw text contains, and a row matching no term is discarded.
// With no terms, every row lands in a single series keyed by the empty
// string. Rows too short to reach the value column are skipped silently;
// stat-tool output routinely mixes summary and blank lines into the grid.
type Accumulator struct {
	column  int
	filters []string
	stamp   TimestampFunc
	coll    *Collection
	log     *slog.Logger
}

// NewAccumulator creates an Accumulator reading values from the given token
// index. filters may be empty. stamp must not be nil.
func NewAccumulator(column int, filters []string, stamp TimestampFunc, logger *slog.Logger) *Accumulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Accumulator{
		column:  column,
		filters: filters,
		stamp:   stamp,
		coll:    NewCollection(),
		log:     logger,
	}
}

// Add processes one data row. Skips are silent and leave no trace in the
// collection; only a timestamp parse failure on an accepted row is an error,
// and it is fatal for the run.
func (a *Accumulator) Add(line string, row parser.Row) error {
	if len(row) <= a.column {
		a.log.Debug("row too short for value column", "tokens", len(row), "column", a.column)
		return nil
	}

	key, ok := a.match(line)
	if !ok {
		a.log.Debug("row matches no filter term", "line", line)
		return nil
	}

	ts, err := a.stamp(row)
	if err != nil {
		return fmt.Errorf("row %q: %w", line, err)
	}

	a.coll.Append(key, DataPoint{Timestamp: ts, Value: row[a.column]})
	return nil
}

// match returns the series key for a line: the first filter term the line
// contains, or the empty key when no terms are configured.
func (a *Accumulator) match(line string) (string, bool) {
	if len(a.filters) == 0 {
		return "", true
	}
	for _, term := range a.filters {
		if strings.Contains(line, term) {
			return term, true
		}
	}
	return "", false
}

// Collection returns the accumulated series.
func (a *Accumulator) Collection() *Collection {
	return a.coll
}
