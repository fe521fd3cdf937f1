package merge

import (
	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
)

// InputFile is one source file of a merge with its selections and per-track options.
type InputFile struct {
	Path           string
	Video          *TrackCopy
	Audio          *TrackCopy
	Subtitles      *TrackCopy
	Buttons        *TrackCopy
	TrackTags      *TrackCopy
	AdditionalArgs args.Additional

	options []*TrackOptions
}

// NewInputFile returns an input that copies every track of path.
func NewInputFile(path string) *InputFile {
	return &InputFile{
		Path:      path,
		Video:     newTrackCopy("--video-tracks", "--no-video"),
		Audio:     newTrackCopy("--audio-tracks", "--no-audio"),
		Subtitles: newTrackCopy("--subtitle-tracks", "--no-subtitles"),
		Buttons:   newTrackCopy("--button-tracks", "--no-buttons"),
		TrackTags: newTrackCopy("--track-tags", "--no-track-tags"),
	}
}

// TracksByType returns the selection for a media kind, or nil for an
// unknown kind.
func (f *InputFile) TracksByType(t identification.TrackType) *TrackCopy {
	switch t {
	case identification.TrackTypeVideo:
		return f.Video
	case identification.TrackTypeAudio:
		return f.Audio
	case identification.TrackTypeSubtitles:
		return f.Subtitles
	case identification.TrackTypeButtons:
		return f.Buttons
	default:
		return nil
	}
}

// ExcludeAllTracks turns every media selection into an inclusion of nothing.
// Track tags are left alone.
func (f *InputFile) ExcludeAllTracks() *InputFile {
	f.Video.ExcludeAll()
	f.Audio.ExcludeAll()
	f.Subtitles.ExcludeAll()
	f.Buttons.ExcludeAll()

	return f
}

// EditTrackByID configures the options of one track. Repeated calls for the
// same id edit the same options.
func (f *InputFile) EditTrackByID(id int64, fn func(*TrackOptions)) *InputFile {
	var opts *TrackOptions

	for _, o := range f.options {
		if o.TrackID == id {
			opts = o

			break
		}
	}

	if opts == nil {
		opts = newTrackOptions(id)
		f.options = append(f.options, opts)
	}

	if fn != nil {
		fn(opts)
	}

	return f
}

// EditTrack configures the options of an identified track.
func (f *InputFile) EditTrack(t *identification.Track, fn func(*TrackOptions)) *InputFile {
	return f.EditTrackByID(t.ID, fn)
}

// EditAllTracks configures options applied to every track of the file.
func (f *InputFile) EditAllTracks(fn func(*TrackOptions)) *InputFile {
	return f.EditTrackByID(AllTracks, fn)
}

// TrackOptions returns the configured per-track options in insertion order.
func (f *InputFile) TrackOptions() []*TrackOptions {
	out := make([]*TrackOptions, len(f.options))
	copy(out, f.options)

	return out
}

// Args implements args.Emitter.
func (f *InputFile) Args() []string {
	emitters := []args.Emitter{f.Video, f.Audio, f.Subtitles, f.Buttons, f.TrackTags}
	for _, o := range f.options {
		emitters = append(emitters, o)
	}

	emitters = append(emitters, f.AdditionalArgs)

	return append(args.Flatten(emitters...), args.AbsPath(f.Path))
}
