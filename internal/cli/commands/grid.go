package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"statplot/pkg/gnuplot"
	"statplot/pkg/series"
)

// GridOptions holds command-line options for the grid command.
type GridOptions struct {
	Chart  chartOptions
	Output outputOptions
}

// NewGridCommand creates the category-axis grid plotting command.
func NewGridCommand() *cobra.Command {
	opts := &GridOptions{}

	cmd := &cobra.Command{
		Use:   "grid [csv-file]",
		Short: "Plot a comma-delimited grid table",
		Long: `Plot pre-structured grid input on a category axis.

The first record is the header: a corner cell followed by the category
labels. Every other record is one series, its first cell the series name and
the rest values aligned to the categories.

Reads from the csv file argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, args, opts)
		},
	}

	addChartFlags(cmd, &opts.Chart)
	addOutputFlags(cmd, &opts.Output)

	return cmd
}

func runGrid(cmd *cobra.Command, args []string, opts *GridOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	table, err := series.ReadGridTable(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	emitter := gnuplot.NewGridEmitter(style(&opts.Chart, &opts.Output))
	return withSink(ctx, &opts.Output, func(w io.Writer) error {
		return emitter.Emit(w, table)
	})
}
