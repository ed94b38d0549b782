package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a profiles file and merges it over the built-in profiles.
// A user profile with a built-in name replaces the built-in entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg := DefaultConfig()
	for _, p := range user.Profiles {
		if existing, ok := cfg.Profile(p.Name); ok {
			*existing = p
		} else {
			cfg.Profiles = append(cfg.Profiles, p)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks every profile. Called before any input is read, so a
// misconfigured profile fails the run up front.
func Validate(cfg *Config) error {
	if len(cfg.Profiles) == 0 {
		return errors.New("profiles: at least one profile is required")
	}

	for i := range cfg.Profiles {
		if err := cfg.Profiles[i].Validate(); err != nil {
			return fmt.Errorf("profiles[%d] (%s): %w", i, cfg.Profiles[i].Name, err)
		}
	}

	return nil
}

// Validate checks a single profile for the fields the pipeline requires.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.HeaderSignal == "" {
		return errors.New("header_signal is required")
	}
	if p.Label == "" && p.Column <= 0 {
		return fmt.Errorf("either label or column is required (header_signal %q)", p.HeaderSignal)
	}
	if p.Column < 0 {
		return fmt.Errorf("column must be >= 1, got %d", p.Column)
	}
	return nil
}
