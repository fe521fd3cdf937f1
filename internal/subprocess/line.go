package subprocess

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind classifies one line of tool output.
type LineKind int

const (
	KindInfo LineKind = iota
	KindWarning
	KindError
	KindProgress
)

func (k LineKind) String() string {
	switch k {
	case KindWarning:
		return "WARNING"
	case KindError:
		return "ERROR"
	case KindProgress:
		return "PROGRESS"
	default:
		return "INFO"
	}
}

// Line is a classified output line. Text has the WARNING:/ERROR: prefix
// and the whitespace following it removed.
type Line struct {
	Text string
	Kind LineKind
}

const (
	warningPrefix = "WARNING:"
	errorPrefix   = "ERROR:"
)

// progressPattern matches "Progress: 42%" as well as the "#GUI#progress 42%"
// form printed with --gui-mode.
var progressPattern = regexp.MustCompile(`^(?:Progress:\s*|#GUI#progress\s+)(\d{1,3})%\s*$`)

// Classify turns a raw output line into a Line. It reports false for
// WARNING and ERROR lines with nothing after the prefix; those are dropped.
// Blank informational lines are kept.
func Classify(raw string) (Line, bool) {
	if rest, ok := strings.CutPrefix(raw, warningPrefix); ok {
		return stripped(rest, KindWarning)
	}

	if rest, ok := strings.CutPrefix(raw, errorPrefix); ok {
		return stripped(rest, KindError)
	}

	if progressPattern.MatchString(raw) {
		return Line{Text: raw, Kind: KindProgress}, true
	}

	return Line{Text: raw, Kind: KindInfo}, true
}

func stripped(rest string, kind LineKind) (Line, bool) {
	text := strings.TrimLeft(rest, " \t")
	if strings.TrimSpace(text) == "" {
		return Line{}, false
	}

	return Line{Text: text, Kind: kind}, true
}

// Percent returns the percentage of a PROGRESS line.
func (l Line) Percent() (int, bool) {
	if l.Kind != KindProgress {
		return 0, false
	}

	m := progressPattern.FindStringSubmatch(l.Text)
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return n, true
}
