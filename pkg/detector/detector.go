// Package detector identifies which conversion profile fits a given log by
// sampling lines for each profile's header signal.
package detector

import (
	"context"
	"io"
	"strings"

	"statplot/pkg/config"
	"statplot/pkg/parser"
)

// Match reports a profile whose header signal appeared in the sample.
type Match struct {
	// Profile is the matching profile.
	Profile config.Profile

	// Line is the 1-based line number of the first header occurrence.
	Line int

	// Labels are the column labels frozen from that header line.
	Labels []string
}

// Detector samples log lines and tests each configured profile against them.
type Detector struct {
	profiles   []config.Profile
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector testing the profiles in cfg.
func New(cfg *config.Config, opts ...Option) *Detector {
	d := &Detector{
		profiles:   cfg.Profiles,
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect samples up to the configured number of lines from r and returns a
// match for every profile whose header signal was seen, in profile order.
func (d *Detector) Detect(ctx context.Context, r io.Reader) ([]Match, error) {
	lines, err := d.sample(ctx, r)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines tests the profiles against an in-memory sample.
func (d *Detector) DetectFromLines(lines []string) []Match {
	var matches []Match

	for _, p := range d.profiles {
		for i, line := range lines {
			if p.HeaderSignal == "" || !strings.Contains(line, p.HeaderSignal) {
				continue
			}
			row := parser.Fields(line)
			m := Match{Profile: p, Line: i + 1}
			if len(row) > parser.TimestampTokens {
				m.Labels = row[parser.TimestampTokens:]
			}
			matches = append(matches, m)
			break
		}
	}

	return matches
}

func (d *Detector) sample(ctx context.Context, r io.Reader) ([]string, error) {
	src := parser.NewLineSource(r)
	lines := make([]string, 0, d.sampleSize)

	for len(lines) < d.sampleSize {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
