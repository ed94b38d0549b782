// Package cli provides the command-line interface for statplot.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"statplot/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statplot",
		Short: "Plot stat-tool logs and grid tables with gnuplot",
		Long: `Statplot converts loosely structured delimited text into gnuplot scripts.

It understands two input shapes:
  - Stat-tool logs (iostat, sar and friends): whitespace-delimited rows with
    a leading date/time pair and a periodically repeating header line. Rows
    are grouped into one plotted series per filter term.
  - Grid tables: comma-delimited rows where the header names the categories
    and each row is one series.

By default the generated script is piped straight into a gnuplot subprocess;
use --script or --script-file to capture the script instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewDiskCommand())
	rootCmd.AddCommand(commands.NewSystemCommand())
	rootCmd.AddCommand(commands.NewGridCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
