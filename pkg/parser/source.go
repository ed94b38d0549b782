package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// LineSource streams raw lines from a reader, one at a time.
// It is safe for sequential access only.
type LineSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewLineSource creates a LineSource over r.
func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return &LineSource{scanner: scanner}
}

// Next returns the next raw line, without its trailing newline.
// Returns io.EOF when the input is exhausted.
func (s *LineSource) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if s.scanner.Scan() {
		s.line++
		return s.scanner.Text(), nil
	}

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading line %d: %w", s.line+1, err)
	}

	return "", io.EOF
}

// Line returns the 1-based number of the most recently returned line.
func (s *LineSource) Line() int {
	return s.line
}
