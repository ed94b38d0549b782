package commands

import (
	"github.com/spf13/cobra"

	"statplot/pkg/convert"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	Signal  string
	Label   string
	Column  int
	Filters []string

	Chart  chartOptions
	Output outputOptions
}

// NewStatsCommand creates the generic stat-log plotting command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats [log-file]",
		Short: "Plot a column from arbitrary stat-tool output",
		Long: `Plot one column of whitespace-delimited stat-tool output.

The header line is located by the --signal substring; its labels (after the
two leading date/time positions) name the data columns. Select the column to
plot either by --label or by --column (1-based, counting data columns).

With --filter terms, each row is assigned to a series named after the first
term its text contains, and rows matching no term are dropped. Without
filters every row lands in a single series.

Reads from the log file argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline := convert.Options{
				HeaderSignal: opts.Signal,
				Label:        opts.Label,
				Column:       opts.Column,
				Filters:      opts.Filters,
			}
			return runStatLog(cmd, args, pipeline, &opts.Chart, &opts.Output)
		},
	}

	cmd.Flags().StringVar(&opts.Signal, "signal", "", "Substring identifying the header line (required)")
	cmd.Flags().StringVar(&opts.Label, "label", "", "Header label of the column to plot")
	cmd.Flags().IntVar(&opts.Column, "column", 0, "1-based data column number to plot")
	cmd.Flags().StringSliceVar(&opts.Filters, "filter", nil, "Substring selecting and naming a series (can be repeated)")
	_ = cmd.MarkFlagRequired("signal")

	addChartFlags(cmd, &opts.Chart)
	addOutputFlags(cmd, &opts.Output)

	return cmd
}
