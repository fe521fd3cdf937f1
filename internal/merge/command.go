package merge

import (
	"strconv"
	"strings"

	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	langtable "github.com/wagiedev/mkvtoolnix-go/internal/language"
)

// GlobalOptions are the options placed before everything else.
type GlobalOptions struct {
	Verbose         bool
	WebM            bool
	Title           string
	DefaultLanguage string
	AdditionalArgs  args.Additional
}

// SetDefaultLanguage sets the language assigned to tracks without one.
func (o *GlobalOptions) SetDefaultLanguage(l langtable.Language) *GlobalOptions {
	o.DefaultLanguage = l.Code()

	return o
}

// Args implements args.Emitter.
func (o *GlobalOptions) Args() []string {
	var out []string

	if o.Verbose {
		out = append(out, "--verbose")
	}

	if o.WebM {
		out = append(out, "--webm")
	}

	if o.Title != "" {
		out = append(out, "--title", o.Title)
	}

	if o.DefaultLanguage != "" {
		out = append(out, "--default-language", o.DefaultLanguage)
	}

	return append(out, o.AdditionalArgs...)
}

// TrackOrderEntry places one track of one input file in the output.
type TrackOrderEntry struct {
	FileID  int
	TrackID int64
}

// OutputControl holds options that shape the output file.
type OutputControl struct {
	TrackOrder     []TrackOrderEntry
	AdditionalArgs args.Additional
}

// AddTrackOrder appends a file/track pair to the output order.
func (o *OutputControl) AddTrackOrder(fileID int, trackID int64) *OutputControl {
	o.TrackOrder = append(o.TrackOrder, TrackOrderEntry{FileID: fileID, TrackID: trackID})

	return o
}

// Args implements args.Emitter.
func (o *OutputControl) Args() []string {
	var out []string

	if len(o.TrackOrder) > 0 {
		parts := make([]string, len(o.TrackOrder))
		for i, e := range o.TrackOrder {
			parts[i] = strconv.Itoa(e.FileID) + ":" + strconv.FormatInt(e.TrackID, 10)
		}

		out = append(out, "--track-order", strings.Join(parts, ","))
	}

	return append(out, o.AdditionalArgs...)
}

// Command is an mkvmerge invocation.
type Command struct {
	OutputFile    string
	Global        GlobalOptions
	OutputControl OutputControl

	inputs []*InputFile
}

// New returns a merge command writing to output.
func New(output string) *Command {
	return &Command{OutputFile: output}
}

// Binary returns the tool the command runs.
func (c *Command) Binary() cli.Binary { return cli.Merge }

// GlobalOptions configures the global options.
func (c *Command) GlobalOptions(fn func(*GlobalOptions)) *Command {
	fn(&c.Global)

	return c
}

// ConfigureOutput configures the output-control options.
func (c *Command) ConfigureOutput(fn func(*OutputControl)) *Command {
	fn(&c.OutputControl)

	return c
}

// AddInputFile appends an input file. fn may be nil.
func (c *Command) AddInputFile(path string, fn func(*InputFile)) *Command {
	in := NewInputFile(path)
	if fn != nil {
		fn(in)
	}

	c.inputs = append(c.inputs, in)

	return c
}

// AddTrack appends the source file of t as an input copying only t, without
// track tags. The track must come from a parsed identification.
func (c *Command) AddTrack(t *identification.Track, fn func(*TrackOptions)) error {
	source, err := t.SourceFile()
	if err != nil {
		return err
	}

	c.AddInputFile(source, func(in *InputFile) {
		in.ExcludeAllTracks()
		in.TrackTags.ExcludeAll()

		if sel := in.TracksByType(t.Type); sel != nil {
			sel.Include(func(l *TrackList) { l.AddTrack(t) })
		}

		in.EditTrack(t, fn)
	})

	return nil
}

// Inputs returns the input files in registration order.
func (c *Command) Inputs() []*InputFile {
	out := make([]*InputFile, len(c.inputs))
	copy(out, c.inputs)

	return out
}

// Args returns the argument vector: global options, output control,
// --output, then every input file.
func (c *Command) Args() []string {
	out := args.Flatten(&c.Global, &c.OutputControl)
	out = append(out, "--output", args.AbsPath(c.OutputFile))

	for _, in := range c.inputs {
		out = append(out, in.Args()...)
	}

	return out
}
