package merge

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	langtable "github.com/wagiedev/mkvtoolnix-go/internal/language"
)

// AllTracks is the track id mkvmerge understands as "every track of the file".
const AllTracks int64 = -2

// DriftRatio is the linear drift correction o/p of --sync.
// A zero Denominator is omitted.
type DriftRatio struct {
	Numerator   float64
	Denominator float64
}

// Sync shifts a track's timestamps and optionally corrects linear drift.
type Sync struct {
	Offset time.Duration
	Ratio  *DriftRatio
}

func (s Sync) value(trackID int64) string {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(trackID, 10))
	b.WriteByte(':')
	b.WriteString(strconv.FormatInt(s.Offset.Milliseconds(), 10))

	if s.Ratio != nil {
		b.WriteByte(',')
		b.WriteString(formatFloat(s.Ratio.Numerator))

		if s.Ratio.Denominator != 0 {
			b.WriteByte('/')
			b.WriteString(formatFloat(s.Ratio.Denominator))
		}
	}

	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TrackOptions are the per-track flags of one input file.
type TrackOptions struct {
	TrackID   int64
	Sync      *Sync
	IsDefault *bool
	IsForced  *bool
	Name      *string
	Language  string
}

func newTrackOptions(id int64) *TrackOptions {
	return &TrackOptions{TrackID: id}
}

// IsEditingAllTracks reports whether the options target every track.
func (o *TrackOptions) IsEditingAllTracks() bool { return o.TrackID == AllTracks }

// SetSync sets the timestamp offset and optional drift ratio.
func (o *TrackOptions) SetSync(offset time.Duration, ratio *DriftRatio) *TrackOptions {
	o.Sync = &Sync{Offset: offset, Ratio: ratio}

	return o
}

// SetDefault sets the default-track flag.
func (o *TrackOptions) SetDefault(v bool) *TrackOptions {
	o.IsDefault = &v

	return o
}

// SetForced sets the forced-display flag.
func (o *TrackOptions) SetForced(v bool) *TrackOptions {
	o.IsForced = &v

	return o
}

// SetName sets the track name.
func (o *TrackOptions) SetName(name string) *TrackOptions {
	o.Name = &name

	return o
}

// SetLanguage sets the language from a resolved language.
func (o *TrackOptions) SetLanguage(l langtable.Language) *TrackOptions {
	o.Language = l.Code()

	return o
}

// SetLanguageIETF sets the language from a BCP 47 tag.
func (o *TrackOptions) SetLanguageIETF(tag language.Tag) *TrackOptions {
	o.Language = tag.String()

	return o
}

// Args implements args.Emitter: sync, default, forced, name, language.
func (o *TrackOptions) Args() []string {
	id := strconv.FormatInt(o.TrackID, 10)
	out := make([]string, 0, 10)

	if o.Sync != nil {
		out = append(out, "--sync", o.Sync.value(o.TrackID))
	}

	if o.IsDefault != nil {
		out = append(out, "--default-track", id+":"+args.Bool(*o.IsDefault))
	}

	if o.IsForced != nil {
		out = append(out, "--forced-track", id+":"+args.Bool(*o.IsForced))
	}

	if o.Name != nil {
		out = append(out, "--track-name", id+":"+*o.Name)
	}

	if o.Language != "" {
		out = append(out, "--language", id+":"+o.Language)
	}

	return out
}
