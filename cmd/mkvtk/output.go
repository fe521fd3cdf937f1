package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// streamLines prints the lines of res as they arrive. With inPlace, progress
// lines overwrite each other on one terminal line.
func streamLines(w io.Writer, res *mkvtoolnix.Result, inPlace bool) {
	pending := false

	for l := range res.Lines() {
		if l.Kind == mkvtoolnix.LineProgress && inPlace {
			fmt.Fprintf(w, "\r%s", l.Text)

			pending = true

			continue
		}

		if pending {
			fmt.Fprintln(w)

			pending = false
		}

		fmt.Fprintln(w, formatLine(l))
	}

	if pending {
		fmt.Fprintln(w)
	}
}

func formatLine(l mkvtoolnix.Line) string {
	switch l.Kind {
	case mkvtoolnix.LineWarning:
		return "warning: " + l.Text
	case mkvtoolnix.LineError:
		return "error: " + l.Text
	default:
		return l.Text
	}
}

// runCommand starts c, streams its output and reports a failed run as an
// error.
func runCommand(cmd *cobra.Command, tk *mkvtoolnix.Toolnix, c mkvtoolnix.Command) error {
	res, err := tk.Start(cmd.Context(), c)
	if err != nil {
		return err
	}
	defer func() { _ = res.Close() }()

	out := cmd.OutOrStdout()
	streamLines(out, res, isTerminal(out))

	if _, err := res.Wait(cmd.Context()); err != nil {
		return err
	}

	return mkvtoolnix.CheckResult(res)
}
