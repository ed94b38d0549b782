package commands

import (
	"github.com/spf13/cobra"

	"statplot/pkg/config"
)

// SystemOptions holds command-line options for the system command.
type SystemOptions struct {
	Label  string
	Column int

	Chart  chartOptions
	Output outputOptions
}

// NewSystemCommand creates the system activity command, a preconfigured
// form of the stats pipeline for sar CPU/memory output.
func NewSystemCommand() *cobra.Command {
	opts := &SystemOptions{}

	cmd := &cobra.Command{
		Use:   "system [log-file]",
		Short: "Plot CPU or memory activity from sar output",
		Long: `Plot one column of sar system activity output as a single series. The
user CPU share is plotted unless --label or --column selects another column.

Reads from the log file argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, args, config.ProfileSystem, nil, opts.Label, opts.Column, &opts.Chart, &opts.Output)
		},
	}

	cmd.Flags().StringVar(&opts.Label, "label", "", "Header label of the column to plot (overrides the profile)")
	cmd.Flags().IntVar(&opts.Column, "column", 0, "1-based data column number to plot (overrides the profile)")

	addChartFlags(cmd, &opts.Chart)
	addOutputFlags(cmd, &opts.Output)

	return cmd
}
