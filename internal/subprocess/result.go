package subprocess

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// maxScanTokenSize is the maximum length of one output line.
const maxScanTokenSize = 1024 * 1024 // 1MB

// Result is the handle of one process run.
//
// Lines are read from the combined output stream on demand. All reads and
// the cache check happen under one mutex, so any number of goroutines may
// iterate Lines concurrently and each sees the same sequence.
type Result struct {
	// RunID identifies the run in log output.
	RunID  string
	Binary cli.Binary
	Args   []string

	log     *slog.Logger
	pid     int
	stream  io.Closer
	scanner *bufio.Scanner

	mu         sync.Mutex
	lines      []Line
	errorCount int
	done       bool
	readErr    error
	// closedEarly is set when Close cut the stream before it ended.
	closedEarly bool

	closed    atomic.Bool
	closeErr  error
	closeOnce sync.Once

	exited   chan struct{}
	exitCode int
}

func newResult(log *slog.Logger, runID string, binary cli.Binary, argv []string, r io.Reader, stream io.Closer) *Result {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)
	scanner.Split((&lineSplitter{}).split)

	return &Result{
		RunID:   runID,
		Binary:  binary,
		Args:    argv,
		log:     log,
		stream:  stream,
		scanner: scanner,
		exited:  make(chan struct{}),
	}
}

// lineSplitter splits on "\n", "\r\n" and a lone "\r". mkvmerge ends every
// progress update but the last with a bare carriage return, so a "\r" ends
// the line at once and a "\n" right after it is skipped on the next call.
type lineSplitter struct {
	afterCR bool
}

func (s *lineSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if s.afterCR {
		s.afterCR = false

		if data[0] == '\n' {
			return 1, nil, nil
		}
	}

	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}

		return 0, nil, nil
	}

	if data[i] == '\r' {
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
		} else {
			s.afterCR = true
		}
	}

	return i + 1, data[:i], nil
}

// PID returns the process id of the run.
func (r *Result) PID() int { return r.pid }

// line returns the classified line at index i, reading the stream when it
// is not cached yet. It reports false once the stream is exhausted.
func (r *Result) line(i int) (Line, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i >= len(r.lines) {
		if r.done {
			return Line{}, false
		}

		if !r.scanner.Scan() {
			r.finishLocked(r.scanner.Err())

			return Line{}, false
		}

		l, ok := Classify(r.scanner.Text())
		if !ok {
			continue
		}

		if l.Kind == KindWarning || l.Kind == KindError {
			r.log.Debug("Classified output line", "line_kind", l.Kind.String(), "text", l.Text)
		}

		if l.Kind == KindError {
			r.errorCount++
		}

		r.lines = append(r.lines, l)
	}

	return r.lines[i], true
}

func (r *Result) finishLocked(err error) {
	r.done = true

	switch {
	case err == nil:
	case r.closed.Load() && stderrors.Is(err, os.ErrClosed):
		r.closedEarly = true
	default:
		r.log.Debug("Output scanner error", "error", err)
		r.readErr = err
	}

	_ = r.closeStream()
}

func (r *Result) closeStream() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.stream.Close()
	})

	return r.closeErr
}

// Lines returns the classified output. Iteration blocks until the next line
// is available and ends when the stream is exhausted or closed. Every call
// starts from the first line.
func (r *Result) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; ; i++ {
			l, ok := r.line(i)
			if !ok || !yield(l) {
				return
			}
		}
	}
}

func (r *Result) snapshot(keep func(Line) bool) []Line {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Line

	for _, l := range r.lines {
		if keep(l) {
			out = append(out, l)
		}
	}

	return out
}

// Buffered returns the lines read so far without touching the stream.
func (r *Result) Buffered() []Line {
	return r.snapshot(func(Line) bool { return true })
}

// Warnings returns the WARNING lines read so far.
func (r *Result) Warnings() []Line {
	return r.snapshot(func(l Line) bool { return l.Kind == KindWarning })
}

// Errors returns the ERROR lines read so far.
func (r *Result) Errors() []Line {
	return r.snapshot(func(l Line) bool { return l.Kind == KindError })
}

// Text returns the text of every line read so far joined by newlines.
func (r *Result) Text() string {
	lines := r.Buffered()
	parts := make([]string, len(lines))

	for i, l := range lines {
		parts[i] = l.Text
	}

	return strings.Join(parts, "\n")
}

// Close releases the output stream. Cached lines stay readable. Close does
// not stop the process; a process that keeps writing fails on the broken
// pipe.
func (r *Result) Close() error {
	r.closed.Store(true)
	err := r.closeStream()

	r.mu.Lock()
	if !r.done {
		r.done = true
		r.closedEarly = true
	}
	r.mu.Unlock()

	return err
}

// Err returns the error that ended reading, if any. It is
// errors.ErrResultClosed when Close was called before the stream ended.
func (r *Result) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readErr != nil {
		return r.readErr
	}

	if r.closedEarly {
		return errors.ErrResultClosed
	}

	return nil
}

// ExitCode returns the exit code, or false while the process is running.
// A process killed by a signal reports -1.
func (r *Result) ExitCode() (int, bool) {
	select {
	case <-r.exited:
		return r.exitCode, true
	default:
		return 0, false
	}
}

// Exited is closed once the process has terminated.
func (r *Result) Exited() <-chan struct{} { return r.exited }

// Wait reads the remaining output, then blocks until the process exits or
// ctx is done.
func (r *Result) Wait(ctx context.Context) (int, error) {
	for range r.Lines() {
		if ctx.Err() != nil {
			break
		}
	}

	select {
	case <-r.exited:
		return r.exitCode, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Success reports whether the process exited with code 0 and printed no
// ERROR line. It is false while the process is still running.
//
// Once the process has exited, Success reads the rest of the output into
// the cache so unread ERROR lines count. A result closed before its output
// ended is never successful, since the lines it did not read are unknown.
func (r *Result) Success() bool {
	code, ok := r.ExitCode()
	if !ok || code != 0 {
		return false
	}

	for range r.Lines() {
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return !r.closedEarly && r.readErr == nil && r.errorCount == 0
}

func (r *Result) setExit(code int) {
	r.exitCode = code
	close(r.exited)
}
