package config

// Built-in profile names.
const (
	ProfileDisk   = "disk"
	ProfileSystem = "system"
)

// DefaultConfig returns the built-in profiles.
//
// The disk profile reads iostat extended device output: the header line
// starts with "Device:", series are split per device via filter terms
// supplied at run time, and the write throughput column is plotted by
// default. The system profile reads sar CPU output: its header carries
// the "CPU" marker, there are no filter terms, and the user share is
// plotted by default.
func DefaultConfig() *Config {
	return &Config{
		Profiles: []Profile{
			{
				Name:         ProfileDisk,
				HeaderSignal: "Device:",
				Label:        "wMB/s",
				Title:        "Disk activity",
				YLabel:       "MB/s",
			},
			{
				Name:         ProfileSystem,
				HeaderSignal: "CPU",
				Label:        "%user",
				Title:        "CPU activity",
				YLabel:       "percent",
			},
		},
	}
}
