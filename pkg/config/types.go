// Package config provides conversion profiles for the stat-log pipeline.
package config

// Profile is one named stat-log conversion configuration: where the header
// is, which column to plot, and how rows are filtered into series.
type Profile struct {
	// Name identifies the profile on the command line.
	Name string `yaml:"name"`

	// HeaderSignal is the substring that identifies the header line.
	HeaderSignal string `yaml:"header_signal"`

	// Label selects the target column by header label. Mutually
	// substitutable with Column; at least one must be set.
	Label string `yaml:"label,omitempty"`

	// Column selects the target column by 1-based data-column number.
	Column int `yaml:"column,omitempty"`

	// Filters are substrings that both select rows and name the series
	// they fall into. Empty means one unnamed series takes every row.
	Filters []string `yaml:"filters,omitempty"`

	// Title and YLabel are chart defaults, overridable per run.
	Title  string `yaml:"title,omitempty"`
	YLabel string `yaml:"ylabel,omitempty"`
}

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Profiles []Profile `yaml:"profiles"`
}

// Profile returns the named profile, or false if it is not defined.
func (c *Config) Profile(name string) (*Profile, bool) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], true
		}
	}
	return nil, false
}
