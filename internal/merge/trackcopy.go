package merge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	langtable "github.com/wagiedev/mkvtoolnix-go/internal/language"
)

// CopyMode tells whether the reference list names tracks to keep or to drop.
type CopyMode int

const (
	// CopyExclude drops the listed tracks. With an empty list nothing is dropped.
	CopyExclude CopyMode = iota
	// CopyInclude keeps only the listed tracks. With an empty list nothing is kept.
	CopyInclude
)

func (m CopyMode) String() string {
	if m == CopyInclude {
		return "include"
	}

	return "exclude"
}

// TrackRef references a track inside a selection list.
type TrackRef interface {
	// Ref returns the list element as written on the command line.
	Ref() string
	isTrackRef()
}

// TrackID references a track by its id in the input file.
type TrackID int64

// TrackLanguage references every track of one language.
type TrackLanguage struct {
	Code string
}

func (TrackID) isTrackRef()       {}
func (TrackLanguage) isTrackRef() {}

// Ref implements TrackRef.
func (r TrackID) Ref() string { return strconv.FormatInt(int64(r), 10) }

// Ref implements TrackRef.
func (r TrackLanguage) Ref() string { return r.Code }

// TrackList collects the references of a selection.
type TrackList struct {
	refs []TrackRef
}

// AddByID appends a track id.
func (l *TrackList) AddByID(id int64) *TrackList {
	l.refs = append(l.refs, TrackID(id))

	return l
}

// AddTrack appends the id of an identified track.
func (l *TrackList) AddTrack(t *identification.Track) *TrackList {
	return l.AddByID(t.ID)
}

// AddByLanguage appends a language reference.
func (l *TrackList) AddByLanguage(lang langtable.Language) *TrackList {
	l.refs = append(l.refs, TrackLanguage{Code: lang.Code()})

	return l
}

// TrackCopy is the selection of one media kind of one input file.
type TrackCopy struct {
	typeFlag string
	noFlag   string
	mode     CopyMode
	list     TrackList
}

func newTrackCopy(typeFlag, noFlag string) *TrackCopy {
	return &TrackCopy{typeFlag: typeFlag, noFlag: noFlag, mode: CopyExclude}
}

// Mode returns the current mode.
func (c *TrackCopy) Mode() CopyMode { return c.mode }

// Refs returns a copy of the reference list.
func (c *TrackCopy) Refs() []TrackRef {
	out := make([]TrackRef, len(c.list.refs))
	copy(out, c.list.refs)

	return out
}

// ExcludeAll clears the list and includes nothing.
func (c *TrackCopy) ExcludeAll() *TrackCopy {
	c.list.refs = nil
	c.mode = CopyInclude

	return c
}

// IncludeAll clears the list and excludes nothing.
func (c *TrackCopy) IncludeAll() *TrackCopy {
	c.list.refs = nil
	c.mode = CopyExclude

	return c
}

// Include keeps only the tracks fn adds.
func (c *TrackCopy) Include(fn func(*TrackList)) *TrackCopy {
	c.ExcludeAll()
	fn(&c.list)

	return c
}

// Exclude keeps every track except the ones fn adds.
func (c *TrackCopy) Exclude(fn func(*TrackList)) *TrackCopy {
	c.IncludeAll()
	fn(&c.list)

	return c
}

// Args implements args.Emitter.
//
// An inclusion of nothing emits the "no" flag. A non-empty list emits the
// type flag and the list, prefixed with "!" when excluding. An exclusion of
// nothing emits no tokens.
func (c *TrackCopy) Args() []string {
	if len(c.list.refs) == 0 {
		if c.mode == CopyInclude {
			return []string{c.noFlag}
		}

		return nil
	}

	parts := make([]string, len(c.list.refs))
	for i, r := range c.list.refs {
		parts[i] = r.Ref()
	}

	value := strings.Join(parts, ",")
	if c.mode == CopyExclude {
		value = "!" + value
	}

	return []string{c.typeFlag, value}
}

// Select applies a textual selection: "all", "none", or a list in the form
// accepted by ParseTrackSelection.
func (c *TrackCopy) Select(value string) error {
	switch strings.TrimSpace(value) {
	case "all":
		c.IncludeAll()

		return nil
	case "none":
		c.ExcludeAll()

		return nil
	}

	mode, refs, err := ParseTrackSelection(value)
	if err != nil {
		return err
	}

	c.list.refs = refs
	c.mode = mode

	return nil
}

// ParseTrackSelection decodes the value of a track-copy flag, such as "1,3"
// or "!eng", into a mode and its references. Numeric elements become TrackID
// and anything else a TrackLanguage.
func ParseTrackSelection(value string) (CopyMode, []TrackRef, error) {
	value = strings.TrimSpace(value)
	mode := CopyInclude

	if rest, ok := strings.CutPrefix(value, "!"); ok {
		mode = CopyExclude
		value = rest
	}

	if value == "" {
		return mode, nil, fmt.Errorf("parse track selection: empty list")
	}

	parts := strings.Split(value, ",")
	refs := make([]TrackRef, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return mode, nil, fmt.Errorf("parse track selection %q: empty element", value)
		}

		if id, err := strconv.ParseInt(p, 10, 64); err == nil {
			refs = append(refs, TrackID(id))

			continue
		}

		refs = append(refs, TrackLanguage{Code: p})
	}

	return mode, refs, nil
}
