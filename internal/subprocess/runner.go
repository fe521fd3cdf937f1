package subprocess

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/config"
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// Command is a built invocation of one of the toolkit binaries.
type Command interface {
	Binary() cli.Binary
	Args() []string
}

// Runner spawns toolkit binaries.
type Runner struct {
	log        *slog.Logger
	options    *config.Options
	discoverer cli.Discoverer
}

// NewRunner creates a runner resolving binaries through discoverer.
func NewRunner(log *slog.Logger, options *config.Options, discoverer cli.Discoverer) *Runner {
	return &Runner{
		log:        log.With("component", "runner"),
		options:    options,
		discoverer: discoverer,
	}
}

// Start spawns binary with argv and returns as soon as the process runs.
//
// The caller must drain Lines, call Wait, or call Close to release the
// output stream. Cancelling ctx kills the process.
func (r *Runner) Start(ctx context.Context, binary cli.Binary, argv []string) (*Result, error) {
	path, err := r.discoverer.Discover(ctx, binary)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", binary, err)
	}

	runID := ulid.Make().String()
	log := r.log.With("binary", binary.String(), "run_id", runID)

	log.Debug("Built command arguments", "args", argv)

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, &errors.StartError{Binary: binary.String(), Err: fmt.Errorf("output pipe: %w", err)}
	}

	//nolint:gosec // G204: Subprocess launching with dynamic args is expected for CLI invocation
	cmd := exec.CommandContext(ctx, path, argv...)
	cmd.Dir = r.options.Cwd
	cmd.Env = r.options.Environ()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()

		log.Error("Failed to start process", "error", err)

		return nil, &errors.StartError{Binary: binary.String(), Err: err}
	}

	// The child holds its own copy of the write end; EOF arrives once it exits.
	_ = pw.Close()

	var out io.Reader = pr
	if !r.options.RawOutput {
		// BOMOverride passes the bytes after a BOM through unchecked, so a
		// second decoder replaces invalid sequences on that path too.
		out = transform.NewReader(pr, transform.Chain(
			unicode.BOMOverride(unicode.UTF8.NewDecoder()),
			unicode.UTF8.NewDecoder(),
		))
	}

	res := newResult(log, runID, binary, argv, out, pr)
	res.pid = cmd.Process.Pid

	log.Info("Process started", "pid", res.pid)

	go func() {
		err := cmd.Wait()
		code := 0

		if err != nil {
			code = -1

			if exitErr, ok := stderrors.AsType[*exec.ExitError](err); ok {
				code = exitErr.ExitCode()
			}
		}

		if code == 0 {
			log.Info("Process exited", "exit_code", code)
		} else {
			log.Warn("Process exited with error", "exit_code", code, "error", err)
		}

		res.setExit(code)
	}()

	return res, nil
}

// Execute runs binary to completion. A run that fails yields the completed
// result together with the tool-specific error.
func (r *Runner) Execute(ctx context.Context, binary cli.Binary, argv []string) (*Result, error) {
	res, err := r.Start(ctx, binary, argv)
	if err != nil {
		return nil, err
	}

	defer func() { _ = res.Close() }()

	if _, err := res.Wait(ctx); err != nil {
		return res, err
	}

	if err := res.Err(); err != nil {
		return res, fmt.Errorf("read %s output: %w", binary, err)
	}

	if !res.Success() {
		return res, NewCommandError(res)
	}

	return res, nil
}

// Run executes a built command to completion.
func (r *Runner) Run(ctx context.Context, cmd Command) (*Result, error) {
	return r.Execute(ctx, cmd.Binary(), cmd.Args())
}
