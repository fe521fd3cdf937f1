package propedit

import (
	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	"github.com/wagiedev/mkvtoolnix-go/internal/selector"
)

// ParseMode controls how thoroughly mkvpropedit scans the file.
type ParseMode string

const (
	ParseModeFast ParseMode = "fast"
	ParseModeFull ParseMode = "full"
)

// GlobalOptions are the command-wide switches.
type GlobalOptions struct {
	Verbose         bool
	AbortOnWarnings bool
	AdditionalArgs  args.Additional
}

// Args implements args.Emitter.
func (o *GlobalOptions) Args() []string {
	out := make([]string, 0, 2+len(o.AdditionalArgs))

	if o.Verbose {
		out = append(out, "--verbose")
	}

	if o.AbortOnWarnings {
		out = append(out, "--abort-on-warnings")
	}

	return append(out, o.AdditionalArgs...)
}

// Command is an mkvpropedit invocation against one file.
type Command struct {
	SourceFile string
	ParseMode  ParseMode
	Global     GlobalOptions

	actions []args.Emitter
}

// New returns an empty command editing file.
func New(file string) *Command {
	return &Command{SourceFile: file}
}

// Binary returns the tool this command runs.
func (c *Command) Binary() cli.Binary { return cli.PropEdit }

// GlobalOptions applies fn to the command-wide switches.
func (c *Command) GlobalOptions(fn func(*GlobalOptions)) *Command {
	fn(&c.Global)

	return c
}

// WithParseMode selects the parse mode.
func (c *Command) WithParseMode(mode ParseMode) *Command {
	c.ParseMode = mode

	return c
}

// EditProperties opens an --edit block on sel and lets fn fill it.
func (c *Command) EditProperties(sel selector.Edit, fn func(*PropertyEdit)) *Command {
	edit := NewPropertyEdit(sel)
	fn(edit)
	c.actions = append(c.actions, edit)

	return c
}

// EditTrackProperties edits the track selected by sel.
func (c *Command) EditTrackProperties(sel selector.Track, fn func(*PropertyEdit)) *Command {
	return c.EditProperties(sel, fn)
}

// EditTrack edits an identified track through its canonical selector.
func (c *Command) EditTrack(t *identification.Track, fn func(*PropertyEdit)) *Command {
	return c.EditProperties(selector.OfTrack(t), fn)
}

// EditTrackByUID edits the track with the given UID.
func (c *Command) EditTrackByUID(uid *identification.UID, fn func(*PropertyEdit)) *Command {
	return c.EditProperties(selector.TrackUID{UID: uid}, fn)
}

// EditTrackByNumber edits the track with the given track number.
func (c *Command) EditTrackByNumber(number uint64, fn func(*PropertyEdit)) *Command {
	return c.EditProperties(selector.TrackNumber{Number: number}, fn)
}

// EditTrackByPosition edits the n-th track, counting only tracks of typ when
// typ is not empty.
func (c *Command) EditTrackByPosition(position int, typ identification.TrackType, fn func(*PropertyEdit)) *Command {
	return c.EditProperties(selector.TrackPosition{Position: position, Type: typ}, fn)
}

// EditSegmentInfo edits the segment information block.
func (c *Command) EditSegmentInfo(fn func(*PropertyEdit)) *Command {
	return c.EditProperties(selector.SegmentInfo{}, fn)
}

// AddAttachment embeds file.
func (c *Command) AddAttachment(file string, meta AttachmentMetadata) *Command {
	c.actions = append(c.actions, AddAttachment{File: file, Metadata: meta})

	return c
}

// ReplaceAttachment replaces the attachments selected by sel with file.
func (c *Command) ReplaceAttachment(sel selector.Attachment, file string, meta AttachmentMetadata) *Command {
	c.actions = append(c.actions, ReplaceAttachment{Selector: sel, File: file, Metadata: meta})

	return c
}

// UpdateAttachment rewrites the metadata of the attachments selected by sel.
func (c *Command) UpdateAttachment(sel selector.Attachment, meta AttachmentMetadata) *Command {
	c.actions = append(c.actions, UpdateAttachment{Selector: sel, Metadata: meta})

	return c
}

// DeleteAttachment removes the attachments selected by sel.
func (c *Command) DeleteAttachment(sel selector.Attachment) *Command {
	c.actions = append(c.actions, DeleteAttachment{Selector: sel})

	return c
}

// Args implements args.Emitter: global options, parse mode, the file, then
// every edit and attachment action in registration order.
func (c *Command) Args() []string {
	out := c.Global.Args()

	if c.ParseMode != "" {
		out = append(out, "--parse-mode", string(c.ParseMode))
	}

	out = append(out, args.AbsPath(c.SourceFile))

	return append(out, args.Flatten(c.actions...)...)
}
