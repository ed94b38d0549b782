package series

import (
	"encoding/csv"
	"fmt"
	"io"
)

// GridRow is one data row of a grid table: a series key followed by values
// positionally aligned to the header categories.
type GridRow struct {
	Key    string
	Values []string
}

// GridTable is pre-structured grid input for category-axis plotting: a
// header row naming the categories, then one row per series. It bypasses
// the header resolution and accumulation pipeline entirely.
type GridTable struct {
	// Categories are the header cells after the leading corner cell.
	Categories []string

	// Rows hold the series in input order.
	Rows []GridRow
}

// NewGridTable builds a GridTable from delimited records. The first record
// is the header; each remaining record's first cell is the series key.
func NewGridTable(records [][]string) (*GridTable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("grid input has no header row")
	}
	if len(records[0]) < 2 {
		return nil, fmt.Errorf("grid header row has %d cells, need a corner cell and at least one category", len(records[0]))
	}

	t := &GridTable{Categories: records[0][1:]}
	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		t.Rows = append(t.Rows, GridRow{Key: rec[0], Values: rec[1:]})
	}
	return t, nil
}

// ReadGridTable reads comma-delimited grid input from r.
// Records may have varying lengths; short rows simply cover fewer
// categories.
func ReadGridTable(r io.Reader) (*GridTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grid records: %w", err)
	}
	return NewGridTable(records)
}
