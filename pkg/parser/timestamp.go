package parser

import (
	"fmt"

	"github.com/araddon/dateparse"
)

// TimestampTokens is the number of leading tokens on every data row that are
// reserved for the date/time pair.
const TimestampTokens = 2

// EpochSeconds joins a row's first two tokens as free-form date/time text and
// parses it into epoch seconds in local time. Sub-second precision is
// discarded; the charting engine's time axis operates at second resolution.
//
// Parsing failure is returned to the caller and is fatal for the run: rows
// accepted by the filter stage are expected to carry well-formed timestamps,
// and there is no defined recovery for a malformed one.
func EpochSeconds(row Row) (int64, error) {
	if len(row) < TimestampTokens {
		return 0, fmt.Errorf("row has %d tokens, need %d for the date/time pair", len(row), TimestampTokens)
	}

	text := row[0] + " " + row[1]

	ts, err := dateparse.ParseLocal(text)
	if err != nil {
		return 0, fmt.Errorf("parsing timestamp %q: %w", text, err)
	}

	return ts.Unix(), nil
}
