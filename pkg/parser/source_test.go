package parser

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestLineSource_Next(t *testing.T) {
	input := "first line\nsecond line\n\nfourth line\n"
	source := NewLineSource(strings.NewReader(input))

	ctx := context.Background()
	var lines []string

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}

	want := []string{"first line", "second line", "", "fourth line"}
	if len(lines) != len(want) {
		t.Fatalf("Got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, want %q", i+1, lines[i], want[i])
		}
	}

	if source.Line() != 4 {
		t.Errorf("Line() = %d, want 4", source.Line())
	}
}

func TestLineSource_ContextCancelled(t *testing.T) {
	source := NewLineSource(strings.NewReader("a\nb\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Next(ctx); err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}
