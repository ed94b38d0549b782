package detector

import (
	"context"
	"strings"
	"testing"

	"statplot/pkg/config"
)

func TestDetector_Detect(t *testing.T) {
	log := `Linux 3.10.0 (host1)
Device:         rrqm/s   wrqm/s     r/s     w/s    rMB/s    wMB/s
08/12/2014 10:15:01 sda 0.00 0.00 1.20 3.40
`
	d := New(config.DefaultConfig())

	matches, err := d.Detect(context.Background(), strings.NewReader(log))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if len(matches) != 1 {
		t.Fatalf("Got %d matches, want 1: %v", len(matches), matches)
	}
	m := matches[0]
	if m.Profile.Name != config.ProfileDisk {
		t.Errorf("Profile.Name = %q, want %q", m.Profile.Name, config.ProfileDisk)
	}
	if m.Line != 2 {
		t.Errorf("Line = %d, want 2", m.Line)
	}
	if len(m.Labels) == 0 || m.Labels[len(m.Labels)-1] != "wMB/s" {
		t.Errorf("Labels = %v, want trailing wMB/s", m.Labels)
	}
}

func TestDetector_NoMatch(t *testing.T) {
	d := New(config.DefaultConfig(), WithSampleSize(10))

	matches, err := d.Detect(context.Background(), strings.NewReader("no headers here\n"))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Got %d matches, want 0", len(matches))
	}
}

func TestDetector_SampleLimit(t *testing.T) {
	// The header sits past the sample window.
	log := strings.Repeat("noise\n", 20) + "Device: rrqm/s\n"
	d := New(config.DefaultConfig(), WithSampleSize(10))

	matches, err := d.Detect(context.Background(), strings.NewReader(log))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Got %d matches beyond the sample window, want 0", len(matches))
	}
}
