package extract

import (
	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
)

// GlobalOptions are the command-wide switches.
type GlobalOptions struct {
	Verbose         bool
	AbortOnWarnings bool
	AdditionalArgs  args.Additional
}

// Args implements args.Emitter.
func (o *GlobalOptions) Args() []string {
	var out []string

	if o.Verbose {
		out = append(out, "--verbose")
	}

	if o.AbortOnWarnings {
		out = append(out, "--abort-on-warnings")
	}

	return append(out, o.AdditionalArgs...)
}

// Command is an mkvextract invocation against one source file.
type Command struct {
	SourceFile string
	Global     GlobalOptions

	modes []args.Emitter
}

// New returns a command reading from source.
func New(source string) *Command {
	return &Command{SourceFile: source}
}

// Binary returns the tool the command runs.
func (c *Command) Binary() cli.Binary { return cli.Extract }

// GlobalOptions applies fn to the command-wide switches.
func (c *Command) GlobalOptions(fn func(*GlobalOptions)) *Command {
	fn(&c.Global)

	return c
}

// Tracks adds a tracks mode.
func (c *Command) Tracks(fn func(*Tracks)) *Command {
	m := &Tracks{}
	fn(m)
	c.modes = append(c.modes, m)

	return c
}

// Attachments adds an attachments mode.
func (c *Command) Attachments(fn func(*Attachments)) *Command {
	m := &Attachments{}
	fn(m)
	c.modes = append(c.modes, m)

	return c
}

// Chapters adds a chapters mode writing to path.
func (c *Command) Chapters(path string, simple bool) *Command {
	c.modes = append(c.modes, &Chapters{Path: path, Simple: simple})

	return c
}

// Tags adds a tags mode writing to path.
func (c *Command) Tags(path string) *Command {
	c.modes = append(c.modes, &Tags{Path: path})

	return c
}

// Timestamps adds a timestamps_v2 mode.
func (c *Command) Timestamps(fn func(*Timestamps)) *Command {
	m := &Timestamps{}
	fn(m)
	c.modes = append(c.modes, m)

	return c
}

// Args returns the argument vector: global options, the source file, then
// every mode in registration order.
func (c *Command) Args() []string {
	out := c.Global.Args()
	out = append(out, args.AbsPath(c.SourceFile))

	for _, m := range c.modes {
		out = append(out, m.Args()...)
	}

	return out
}
