package mkvtoolnix

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// PrintOptions selects what ExecuteAndPrint writes.
type PrintOptions struct {
	// Command writes the command line before running it.
	Command bool
	// Output writes every output line as it arrives.
	Output bool
	// ExitCode writes the exit code once the process has ended.
	ExitCode bool
}

// CommandLine renders cmd as the binary name followed by its arguments,
// separated by spaces. It is meant for logs, not for a shell.
func CommandLine(cmd Command) string {
	return strings.Join(append([]string{cmd.Binary().String()}, cmd.Args()...), " ")
}

// ExecuteAndPrint runs cmd and writes to w as selected by opts. Unlike
// Execute it does not turn a failed run into an error; inspect
// Result.Success instead. Errors are returned only when the process could
// not be run or ctx ended.
func (t *Toolnix) ExecuteAndPrint(ctx context.Context, cmd Command, w io.Writer, opts PrintOptions) (*Result, error) {
	if opts.Command {
		fmt.Fprintln(w, CommandLine(cmd))
	}

	res, err := t.Start(ctx, cmd)
	if err != nil {
		return nil, err
	}

	defer func() { _ = res.Close() }()

	for l := range res.Lines() {
		if !opts.Output {
			continue
		}

		switch l.Kind {
		case LineWarning:
			fmt.Fprintln(w, "WARNING: "+l.Text)
		case LineError:
			fmt.Fprintln(w, "ERROR: "+l.Text)
		default:
			fmt.Fprintln(w, l.Text)
		}
	}

	code, err := res.Wait(ctx)
	if err != nil {
		return res, err
	}

	if opts.ExitCode {
		fmt.Fprintf(w, "Exit code: %d\n", code)
	}

	return res, res.Err()
}
