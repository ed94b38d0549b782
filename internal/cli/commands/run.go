package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"statplot/pkg/config"
	"statplot/pkg/convert"
	"statplot/pkg/gnuplot"
)

// outputOptions selects where the generated script goes: a live gnuplot
// subprocess by default, or a text sink for inspection and testing.
type outputOptions struct {
	Script     bool
	ScriptFile string
	PNGFile    string
	Persist    bool
	Engine     string
}

func addOutputFlags(cmd *cobra.Command, opts *outputOptions) {
	cmd.Flags().BoolVar(&opts.Script, "script", false, "Print the gnuplot script to stdout instead of running gnuplot")
	cmd.Flags().StringVar(&opts.ScriptFile, "script-file", "", "Write the gnuplot script to a file instead of running gnuplot")
	cmd.Flags().StringVar(&opts.PNGFile, "png", "", "Render to a PNG file (sets the png terminal and output)")
	cmd.Flags().BoolVar(&opts.Persist, "persist", true, "Keep interactive gnuplot windows open after plotting")
	cmd.Flags().StringVar(&opts.Engine, "gnuplot", gnuplot.DefaultBinary, "Path to the gnuplot binary")
}

// chartOptions are the presentation and verbosity flags shared by the
// plotting commands.
type chartOptions struct {
	Title      string
	YLabel     string
	Verbose    bool
	ConfigPath string
}

func addChartFlags(cmd *cobra.Command, opts *chartOptions) {
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title")
	cmd.Flags().StringVar(&opts.YLabel, "ylabel", "", "Value axis label")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log skipped rows and resolution details")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Profiles file overriding the built-in profiles")
}

// newLogger builds the per-run structured logger. Row skips log at debug
// level, so they stay silent unless verbose is set.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadProfiles returns the built-in profiles, or the merged set when a
// profiles file was given.
func loadProfiles(opts *chartOptions) (*config.Config, error) {
	if opts.ConfigPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	return cfg, nil
}

func errProfileNotFound(name string) error {
	return fmt.Errorf("profile %q is not defined (built-ins: %s, %s)", name, config.ProfileDisk, config.ProfileSystem)
}

// openInput opens the positional input argument, with "-" or no argument
// meaning stdin. The caller must close the returned reader.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0]) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, "", fmt.Errorf("opening input: %w", err)
	}
	return f, args[0], nil
}

// style assembles the emitter style from the chart and output flags.
func style(chart *chartOptions, out *outputOptions) gnuplot.Style {
	s := gnuplot.Style{Title: chart.Title, YLabel: chart.YLabel}
	if out.PNGFile != "" {
		s.Terminal = "png"
		s.OutputFile = out.PNGFile
	}
	return s
}

// withSink runs emit against the selected script sink. When the sink is the
// gnuplot subprocess the pipe is closed on every path, including a failed
// emission, so the engine always sees end-of-input.
func withSink(ctx context.Context, out *outputOptions, emit func(io.Writer) error) error {
	switch {
	case out.ScriptFile != "":
		f, err := os.Create(out.ScriptFile) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return fmt.Errorf("creating script file: %w", err)
		}
		werr := emit(f)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		return werr

	case out.Script:
		return emit(os.Stdout)

	default:
		eng, err := gnuplot.StartEngine(ctx, out.Engine, out.Persist)
		if err != nil {
			return err
		}
		werr := emit(eng)
		cerr := eng.Close()
		if werr != nil {
			return werr
		}
		return cerr
	}
}

// runStatLog drives the full stat-log pipeline for one command invocation.
func runStatLog(cmd *cobra.Command, args []string, pipeline convert.Options, chart *chartOptions, out *outputOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger(chart.Verbose)

	converter, err := convert.New(pipeline, logger)
	if err != nil {
		return err
	}

	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	result, err := converter.Run(ctx, in)
	if err != nil {
		return fmt.Errorf("converting %s: %w", name, err)
	}

	s := style(chart, out)
	if s.YLabel == "" {
		s.YLabel = result.Label
	}

	emitter := gnuplot.NewScriptEmitter(s)
	return withSink(ctx, out, func(w io.Writer) error {
		return emitter.Emit(w, result.Collection)
	})
}
