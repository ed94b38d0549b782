package commands

import (
	"github.com/spf13/cobra"

	"statplot/pkg/config"
	"statplot/pkg/convert"
)

// DiskOptions holds command-line options for the disk command.
type DiskOptions struct {
	Devices []string
	Label   string
	Column  int

	Chart  chartOptions
	Output outputOptions
}

// NewDiskCommand creates the disk activity command, a preconfigured form of
// the stats pipeline for iostat extended device output.
func NewDiskCommand() *cobra.Command {
	opts := &DiskOptions{}

	cmd := &cobra.Command{
		Use:   "disk [log-file]",
		Short: "Plot per-device disk activity from iostat output",
		Long: `Plot one column of iostat extended device statistics, one series per
device named with --device. The write throughput column is plotted unless
--label or --column selects another one.

Reads from the log file argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, args, config.ProfileDisk, opts.Devices, opts.Label, opts.Column, &opts.Chart, &opts.Output)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Devices, "device", nil, "Device name to plot as its own series (can be repeated)")
	cmd.Flags().StringVar(&opts.Label, "label", "", "Header label of the column to plot (overrides the profile)")
	cmd.Flags().IntVar(&opts.Column, "column", 0, "1-based data column number to plot (overrides the profile)")

	addChartFlags(cmd, &opts.Chart)
	addOutputFlags(cmd, &opts.Output)

	return cmd
}

// runProfile resolves a named profile, applies command-line overrides, and
// runs the stat-log pipeline with it.
func runProfile(cmd *cobra.Command, args []string, name string, filters []string, label string, column int, chart *chartOptions, out *outputOptions) error {
	cfg, err := loadProfiles(chart)
	if err != nil {
		return err
	}

	profile, ok := cfg.Profile(name)
	if !ok {
		return errProfileNotFound(name)
	}

	pipeline := convert.Options{
		HeaderSignal: profile.HeaderSignal,
		Label:        profile.Label,
		Column:       profile.Column,
		Filters:      profile.Filters,
	}
	if label != "" {
		pipeline.Label = label
		pipeline.Column = 0
	}
	if column > 0 {
		pipeline.Column = column
		if label == "" {
			pipeline.Label = ""
		}
	}
	if len(filters) > 0 {
		pipeline.Filters = filters
	}

	if chart.Title == "" {
		chart.Title = profile.Title
	}
	if chart.YLabel == "" {
		chart.YLabel = profile.YLabel
	}

	return runStatLog(cmd, args, pipeline, chart, out)
}
