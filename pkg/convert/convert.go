// Package convert wires the stat-log pipeline end to end: streaming line
// consumption, header resolution, row filtering and accumulation, and
// timestamp normalization. The emitters in pkg/gnuplot consume its result.
package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"statplot/pkg/parser"
	"statplot/pkg/resolver"
	"statplot/pkg/series"
)

// Options configures one stat-log conversion.
type Options struct {
	// HeaderSignal identifies the header line by substring.
	HeaderSignal string

	// Label and Column select the target data column; exactly one is
	// required. Column is 1-based among the data columns.
	Label  string
	Column int

	// Filters split rows into named series; empty means one unnamed
	// series takes every row.
	Filters []string
}

// Result is the output of one conversion run.
type Result struct {
	// Collection holds the accumulated series. Empty when the header
	// signal never appeared in the input.
	Collection *series.Collection

	// Label is the display label of the plotted column. It may be empty
	// when an explicit column number pointed past the header labels, or
	// when the header was never found.
	Label string
}

// Converter runs the stat-log pipeline. Each Run owns its own resolver
// state machine and series collection; a Converter may be reused but never
// shared across concurrent runs.
type Converter struct {
	opts Options
	log  *slog.Logger
}

// New validates opts and creates a Converter. A missing header signal or a
// missing column/label selection is a configuration error, reported here so
// it fails before any input is read.
func New(opts Options, logger *slog.Logger) (*Converter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	// A throwaway resolver enforces the configuration contract.
	if _, err := resolver.New(opts.HeaderSignal, opts.Label, opts.Column, logger); err != nil {
		return nil, err
	}
	return &Converter{opts: opts, log: logger}, nil
}

// Run consumes raw lines from r and returns the accumulated series.
//
// Header lines go to the resolver and never become data, so periodically
// repeated headers are harmless. Rows before resolution, rows too short to
// reach the value column, and rows matching no filter term are skipped
// silently. A timestamp parse failure on an accepted row aborts the run.
func (c *Converter) Run(ctx context.Context, r io.Reader) (*Result, error) {
	res, err := resolver.New(c.opts.HeaderSignal, c.opts.Label, c.opts.Column, c.log)
	if err != nil {
		return nil, err
	}

	src := parser.NewLineSource(r)
	var acc *series.Accumulator

	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := parser.Fields(line)

		if res.IsHeader(line) {
			res.Observe(line, row)
			if res.Resolved() && acc == nil {
				acc = series.NewAccumulator(res.ColumnIndex(), c.opts.Filters, parser.EpochSeconds, c.log)
			}
			continue
		}

		if !res.Resolved() {
			c.log.Debug("row before column resolution", "line", src.Line())
			continue
		}

		if err := acc.Add(line, row); err != nil {
			return nil, fmt.Errorf("line %d: %w", src.Line(), err)
		}
	}

	if !res.Resolved() {
		c.log.Warn("header signal never found, plot will be empty",
			"signal", c.opts.HeaderSignal, "label", c.opts.Label, "column", c.opts.Column)
		return &Result{Collection: series.NewCollection()}, nil
	}

	return &Result{Collection: acc.Collection(), Label: res.Label()}, nil
}
