package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"statplot/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	SampleSize int
	Chart      chartOptions
}

// NewDetectCommand creates the profile detection command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect [log-file]",
		Short: "Report which profiles match a log",
		Long: `Sample the beginning of a log and report every profile whose header
signal appears, along with the column labels found on the header line.

Reads from the log file argument, or stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", 100, "Number of lines to sample")
	cmd.Flags().StringVar(&opts.Chart.ConfigPath, "config", "", "Profiles file overriding the built-in profiles")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadProfiles(&opts.Chart)
	if err != nil {
		return err
	}

	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	matches, err := detector.New(cfg, detector.WithSampleSize(opts.SampleSize)).Detect(ctx, in)
	if err != nil {
		return fmt.Errorf("sampling %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintf(out, "No profile header signal found in the first %d lines of %s\n", opts.SampleSize, name)
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(out, "%s: header %q on line %d", m.Profile.Name, m.Profile.HeaderSignal, m.Line)
		if len(m.Labels) > 0 {
			fmt.Fprintf(out, ", labels: %s", strings.Join(m.Labels, " "))
		}
		fmt.Fprintln(out)
	}
	return nil
}
