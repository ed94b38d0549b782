package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(DefaultConfig()) error = %v", err)
	}

	disk, ok := cfg.Profile(ProfileDisk)
	if !ok {
		t.Fatal("disk profile missing")
	}
	if disk.HeaderSignal != "Device:" {
		t.Errorf("disk header signal = %q, want %q", disk.HeaderSignal, "Device:")
	}
	if len(disk.Filters) != 0 {
		t.Errorf("disk filters = %v, want none (devices come from the command line)", disk.Filters)
	}

	system, ok := cfg.Profile(ProfileSystem)
	if !ok {
		t.Fatal("system profile missing")
	}
	if system.Label == "" {
		t.Error("system profile selects no label")
	}
	if len(system.Filters) != 0 {
		t.Errorf("system filters = %v, want none", system.Filters)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `profiles:
  - name: disk
    header_signal: "Device:"
    label: rMB/s
  - name: net
    header_signal: IFACE
    label: rxkB/s
    title: Network activity
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	disk, _ := cfg.Profile("disk")
	if disk.Label != "rMB/s" {
		t.Errorf("disk label = %q, want override %q", disk.Label, "rMB/s")
	}

	net, ok := cfg.Profile("net")
	if !ok {
		t.Fatal("added profile missing")
	}
	if net.HeaderSignal != "IFACE" {
		t.Errorf("net header signal = %q, want %q", net.HeaderSignal, "IFACE")
	}

	if _, ok := cfg.Profile(ProfileSystem); !ok {
		t.Error("untouched built-in profile dropped by merge")
	}
}

func TestLoad_RejectsInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	// Neither label nor column: fatal before any row is read.
	content := `profiles:
  - name: broken
    header_signal: "Device:"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a profile with neither label nor column")
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"label selected", Profile{Name: "a", HeaderSignal: "X", Label: "l"}, false},
		{"column selected", Profile{Name: "a", HeaderSignal: "X", Column: 3}, false},
		{"neither", Profile{Name: "a", HeaderSignal: "X"}, true},
		{"no signal", Profile{Name: "a", Label: "l"}, true},
		{"no name", Profile{HeaderSignal: "X", Label: "l"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
