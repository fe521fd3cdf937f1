package extract

import (
	"strconv"

	"github.com/wagiedev/mkvtoolnix-go/internal/args"
)

type target struct {
	id   int64
	path string
}

func (t target) String() string {
	return strconv.FormatInt(t.id, 10) + ":" + args.AbsPath(t.path)
}

func emitTargets(out []string, targets []target) []string {
	for _, t := range targets {
		out = append(out, t.String())
	}

	return out
}

// Tracks extracts tracks into raw or container-less files.
type Tracks struct {
	// BlockAdd keeps BlockAdditions up to this level; 0 drops them all.
	// Nil keeps the default.
	BlockAdd *int
	// CueSheet also writes a cue sheet built from the chapters and tags.
	CueSheet       bool
	AdditionalArgs args.Additional

	targets []target
}

// SetBlockAdd sets the BlockAddition level to keep.
func (m *Tracks) SetBlockAdd(level int) *Tracks {
	m.BlockAdd = &level

	return m
}

// Add extracts track id to path.
func (m *Tracks) Add(id int64, path string) *Tracks {
	m.targets = append(m.targets, target{id: id, path: path})

	return m
}

// Args implements args.Emitter.
func (m *Tracks) Args() []string {
	out := []string{"tracks"}

	if m.BlockAdd != nil {
		out = append(out, "--blockadd", strconv.Itoa(*m.BlockAdd))
	}

	if m.CueSheet {
		out = append(out, "--cuesheet")
	}

	out = append(out, m.AdditionalArgs...)

	return emitTargets(out, m.targets)
}

// Attachments extracts attachments by id.
type Attachments struct {
	targets []target
}

// Add extracts attachment id to path.
func (m *Attachments) Add(id int64, path string) *Attachments {
	m.targets = append(m.targets, target{id: id, path: path})

	return m
}

// Args implements args.Emitter.
func (m *Attachments) Args() []string {
	return emitTargets([]string{"attachments"}, m.targets)
}

// Chapters extracts the chapters as XML or, with Simple, OGM text.
type Chapters struct {
	Path   string
	Simple bool
}

// Args implements args.Emitter.
func (m *Chapters) Args() []string {
	out := []string{"chapters"}
	if m.Simple {
		out = append(out, "--simple")
	}

	return append(out, args.AbsPath(m.Path))
}

// Tags extracts the tags as XML.
type Tags struct {
	Path string
}

// Args implements args.Emitter.
func (m *Tags) Args() []string {
	return []string{"tags", args.AbsPath(m.Path)}
}

// Timestamps writes timestamp files in v2 format.
type Timestamps struct {
	targets []target
}

// Add writes the timestamps of track id to path.
func (m *Timestamps) Add(id int64, path string) *Timestamps {
	m.targets = append(m.targets, target{id: id, path: path})

	return m
}

// Args implements args.Emitter.
func (m *Timestamps) Args() []string {
	return emitTargets([]string{"timestamps_v2"}, m.targets)
}
