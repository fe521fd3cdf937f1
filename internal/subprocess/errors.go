package subprocess

import (
	"fmt"

	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// CommandError reports a completed run that did not succeed. The full
// classified output stays available through Result.
type CommandError struct {
	Binary cli.Binary
	Result *Result
}

func (e *CommandError) Error() string {
	code, _ := e.Result.ExitCode()

	if errs := e.Result.Errors(); len(errs) > 0 {
		return fmt.Sprintf("%s failed with exit code %d: %s", e.Binary, code, errs[0].Text)
	}

	return fmt.Sprintf("%s failed with exit code %d", e.Binary, code)
}

// IsMkvToolnixError implements errors.MkvToolnixError.
func (e *CommandError) IsMkvToolnixError() bool { return true }

// MergeError is the failure of an mkvmerge run.
type MergeError struct{ *CommandError }

// PropEditError is the failure of an mkvpropedit run.
type PropEditError struct{ *CommandError }

// ExtractError is the failure of an mkvextract run.
type ExtractError struct{ *CommandError }

func (e *MergeError) Unwrap() error    { return e.CommandError }
func (e *PropEditError) Unwrap() error { return e.CommandError }
func (e *ExtractError) Unwrap() error  { return e.CommandError }

var (
	_ errors.MkvToolnixError = (*CommandError)(nil)
	_ errors.MkvToolnixError = (*MergeError)(nil)
	_ errors.MkvToolnixError = (*PropEditError)(nil)
	_ errors.MkvToolnixError = (*ExtractError)(nil)
)

// NewCommandError returns the tool-specific error for a failed result.
func NewCommandError(res *Result) error {
	base := &CommandError{Binary: res.Binary, Result: res}

	switch res.Binary {
	case cli.Merge:
		return &MergeError{base}
	case cli.PropEdit:
		return &PropEditError{base}
	case cli.Extract:
		return &ExtractError{base}
	default:
		return base
	}
}
