package gnuplot

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultBinary is the engine executable looked up on PATH.
const DefaultBinary = "gnuplot"

// Engine is a running gnuplot subprocess whose stdin accepts script text.
// Writes may block on the subprocess's input buffering. The pipe must be
// closed on every exit path, including a mid-emission abort, so gnuplot
// sees end-of-input and can render and exit; Close handles both the pipe
// and process reaping.
type Engine struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// StartEngine launches the engine subprocess. With persist set, interactive
// terminals keep their window open after the script ends.
func StartEngine(ctx context.Context, binary string, persist bool) (*Engine, error) {
	if binary == "" {
		binary = DefaultBinary
	}

	var args []string
	if persist {
		args = append(args, "-persist")
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening %s stdin pipe: %w", binary, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", binary, err)
	}

	return &Engine{cmd: cmd, stdin: stdin}, nil
}

// Write sends script text to the engine's stdin.
func (e *Engine) Write(p []byte) (int, error) {
	return e.stdin.Write(p)
}

// Close closes the stdin pipe and waits for the subprocess. Safe to call
// after a failed emission; the pipe close is attempted before reaping so
// the engine always receives end-of-input.
func (e *Engine) Close() error {
	cerr := e.stdin.Close()
	werr := e.cmd.Wait()
	if cerr != nil {
		return fmt.Errorf("closing engine pipe: %w", cerr)
	}
	if werr != nil {
		return fmt.Errorf("engine exited: %w", werr)
	}
	return nil
}
