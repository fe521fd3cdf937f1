package identification

import (
	"time"

	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

// TrackType is the media kind of a track.
type TrackType string

const (
	TrackTypeVideo     TrackType = "video"
	TrackTypeAudio     TrackType = "audio"
	TrackTypeSubtitles TrackType = "subtitles"
	TrackTypeButtons   TrackType = "buttons"
)

// Abbreviation returns the single-letter form used in track selectors,
// or "" for an unknown type.
func (t TrackType) Abbreviation() string {
	switch t {
	case TrackTypeAudio:
		return "a"
	case TrackTypeVideo:
		return "v"
	case TrackTypeButtons:
		return "b"
	case TrackTypeSubtitles:
		return "s"
	default:
		return ""
	}
}

// Tristate is a yes/no/unknown flag.
type Tristate string

const (
	TristateTrue    Tristate = "true"
	TristateFalse   Tristate = "false"
	TristateUnknown Tristate = "unknown"
)

// FileIdentification is the decoded `mkvmerge -J` document.
type FileIdentification struct {
	Attachments                 []*Attachment `json:"attachments"`
	Chapters                    []Chapter     `json:"chapters"`
	Container                   Container     `json:"container"`
	Errors                      []string      `json:"errors"`
	FileName                    string        `json:"file_name"`
	GlobalTags                  []TagSet      `json:"global_tags,omitempty"`
	IdentificationFormatVersion int           `json:"identification_format_version,omitempty"`
	TrackTags                   []TrackTagSet `json:"track_tags,omitempty"`
	Tracks                      []*Track      `json:"tracks"`
	Warnings                    []string      `json:"warnings"`
}

// TracksOfType returns the tracks of kind t, in file order.
func (f *FileIdentification) TracksOfType(t TrackType) []*Track {
	out := make([]*Track, 0, len(f.Tracks))

	for _, track := range f.Tracks {
		if track.Type == t {
			out = append(out, track)
		}
	}

	return out
}

// Track returns the track with the given id, or nil.
func (f *FileIdentification) Track(id int64) *Track {
	for _, track := range f.Tracks {
		if track.ID == id {
			return track
		}
	}

	return nil
}

// Attachment returns the attachment with the given id, or nil.
func (f *FileIdentification) Attachment(id int64) *Attachment {
	for _, a := range f.Attachments {
		if a.ID == id {
			return a
		}
	}

	return nil
}

// link sets each track's back-reference and 1-based position.
func (f *FileIdentification) link() {
	for i, track := range f.Tracks {
		if track == nil {
			continue
		}

		track.file = f
		track.position = i + 1
	}
}

// Track is one media stream of an identified file.
type Track struct {
	Codec      string           `json:"codec"`
	ID         int64            `json:"id"`
	Type       TrackType        `json:"type"`
	Properties *TrackProperties `json:"properties,omitempty"`

	file     *FileIdentification
	position int
}

// FileIdentification returns the document this track was decoded from,
// or nil for a track constructed by hand.
func (t *Track) FileIdentification() *FileIdentification { return t.file }

// Position returns the 1-based index of the track in its file, or 0 when
// the track was not produced by Parse.
func (t *Track) Position() int { return t.position }

// SourceFile returns the path of the identified file the track belongs to.
func (t *Track) SourceFile() (string, error) {
	if t.file == nil {
		return "", errors.ErrNoFileIdentification
	}

	return t.file.FileName, nil
}

// UID returns the track UID, or nil.
func (t *Track) UID() *UID {
	if t.Properties == nil {
		return nil
	}

	return t.Properties.UID
}

// Number returns the Matroska track number, or nil.
func (t *Track) Number() *uint64 {
	if t.Properties == nil {
		return nil
	}

	return t.Properties.Number
}

// Name returns the track name, or "".
func (t *Track) Name() string {
	if t.Properties == nil {
		return ""
	}

	return t.Properties.TrackName
}

// LanguageCode returns the ISO 639-2 language property, or "".
func (t *Track) LanguageCode() string {
	if t.Properties == nil {
		return ""
	}

	return t.Properties.Language
}

// IsDefault returns the default flag, or fallback when absent.
func (t *Track) IsDefault(fallback bool) bool {
	if t.Properties == nil {
		return fallback
	}

	return boolOr(t.Properties.DefaultTrack, fallback)
}

// IsEnabled returns the enabled flag, or fallback when absent.
func (t *Track) IsEnabled(fallback bool) bool {
	if t.Properties == nil {
		return fallback
	}

	return boolOr(t.Properties.EnabledTrack, fallback)
}

// IsForced returns the forced flag, or fallback when absent.
func (t *Track) IsForced(fallback bool) bool {
	if t.Properties == nil {
		return fallback
	}

	return boolOr(t.Properties.ForcedTrack, fallback)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}

// TrackProperties holds the optional per-track fields.
type TrackProperties struct {
	AACIsSBR                  Tristate   `json:"aac_is_sbr,omitempty"`
	AudioBitsPerSample        *int       `json:"audio_bits_per_sample,omitempty"`
	AudioChannels             *int       `json:"audio_channels,omitempty"`
	AudioSamplingFrequency    *int       `json:"audio_sampling_frequency,omitempty"`
	CodecDelay                *int64     `json:"codec_delay,omitempty"`
	CodecID                   string     `json:"codec_id,omitempty"`
	CodecName                 string     `json:"codec_name,omitempty"`
	CodecPrivateData          string     `json:"codec_private_data,omitempty"`
	CodecPrivateLength        *int       `json:"codec_private_length,omitempty"`
	ContentEncodingAlgorithms string     `json:"content_encoding_algorithms,omitempty"`
	DefaultDuration           *Duration  `json:"default_duration,omitempty"`
	DefaultTrack              *bool      `json:"default_track,omitempty"`
	DisplayDimensions         *Dimension `json:"display_dimensions,omitempty"`
	DisplayUnit               *int       `json:"display_unit,omitempty"`
	EnabledTrack              *bool      `json:"enabled_track,omitempty"`
	Encoding                  string     `json:"encoding,omitempty"`
	FlagCommentary            *bool      `json:"flag_commentary,omitempty"`
	FlagHearingImpaired       *bool      `json:"flag_hearing_impaired,omitempty"`
	FlagOriginal              *bool      `json:"flag_original,omitempty"`
	FlagTextDescriptions      *bool      `json:"flag_text_descriptions,omitempty"`
	FlagVisualImpaired        *bool      `json:"flag_visual_impaired,omitempty"`
	ForcedTrack               *bool      `json:"forced_track,omitempty"`
	Language                  string     `json:"language,omitempty"`
	LanguageIETF              string     `json:"language_ietf,omitempty"`
	MinimumTimestamp          *Duration  `json:"minimum_timestamp,omitempty"`
	MultiplexedTracks         []int      `json:"multiplexed_tracks,omitempty"`
	Number                    *uint64    `json:"number,omitempty"`
	Packetizer                string     `json:"packetizer,omitempty"`
	PixelDimensions           *Dimension `json:"pixel_dimensions,omitempty"`
	ProgramNumber             *int       `json:"program_number,omitempty"`
	StereoMode                *int       `json:"stereo_mode,omitempty"`
	StreamID                  *int       `json:"stream_id,omitempty"`
	SubStreamID               *int       `json:"sub_stream_id,omitempty"`
	TagArtist                 string     `json:"tag_artist,omitempty"`
	TagBitsps                 string     `json:"tag_bitsps,omitempty"`
	TagBps                    string     `json:"tag_bps,omitempty"`
	TagFps                    string     `json:"tag_fps,omitempty"`
	TagTitle                  string     `json:"tag_title,omitempty"`
	TeletextPage              *int       `json:"teletext_page,omitempty"`
	TextSubtitles             *bool      `json:"text_subtitles,omitempty"`
	TrackName                 string     `json:"track_name,omitempty"`
	UID                       *UID       `json:"uid,omitempty"`
}

// Attachment is a file embedded in the container.
type Attachment struct {
	ContentType string                `json:"content_type,omitempty"`
	Description string                `json:"description,omitempty"`
	FileName    string                `json:"file_name"`
	ID          int64                 `json:"id"`
	Size        int64                 `json:"size"`
	Properties  *AttachmentProperties `json:"properties,omitempty"`
	Type        string                `json:"type,omitempty"`
}

// AttachmentProperties holds the optional per-attachment fields.
type AttachmentProperties struct {
	UID *UID `json:"uid,omitempty"`
}

// UID returns the attachment UID, or nil.
func (a *Attachment) UID() *UID {
	if a.Properties == nil {
		return nil
	}

	return a.Properties.UID
}

// Chapter summarises one edition of chapters.
type Chapter struct {
	NumEntries int `json:"num_entries"`
}

// TagSet summarises a block of global tags.
type TagSet struct {
	NumEntries int `json:"num_entries"`
}

// TrackTagSet summarises the tags attached to one track.
type TrackTagSet struct {
	NumEntries int   `json:"num_entries"`
	TrackID    int64 `json:"track_id"`
}

// Container describes the file format as a whole.
type Container struct {
	Recognized bool                 `json:"recognized"`
	Supported  bool                 `json:"supported"`
	Type       string               `json:"type,omitempty"`
	Properties *ContainerProperties `json:"properties,omitempty"`
}

// Duration returns the container duration, or 0 when unknown.
func (c *Container) Duration() time.Duration {
	if c.Properties == nil || c.Properties.Duration == nil {
		return 0
	}

	return c.Properties.Duration.Std()
}

// ContainerProperties holds the optional container-level fields.
type ContainerProperties struct {
	ContainerType         *int       `json:"container_type,omitempty"`
	DateLocal             *time.Time `json:"date_local,omitempty"`
	DateUTC               *time.Time `json:"date_utc,omitempty"`
	Duration              *Duration  `json:"duration,omitempty"`
	IsProvidingTimestamps *bool      `json:"is_providing_timestamps,omitempty"`
	MuxingApplication     string     `json:"muxing_application,omitempty"`
	NextSegmentUID        string     `json:"next_segment_uid,omitempty"`
	OtherFile             []string   `json:"other_file,omitempty"`
	Playlist              *bool      `json:"playlist,omitempty"`
	PlaylistChapters      *int       `json:"playlist_chapters,omitempty"`
	PlaylistDuration      *Duration  `json:"playlist_duration,omitempty"`
	PlaylistFile          []string   `json:"playlist_file,omitempty"`
	PlaylistSize          *int64     `json:"playlist_size,omitempty"`
	PreviousSegmentUID    string     `json:"previous_segment_uid,omitempty"`
	Programs              []Program  `json:"programs,omitempty"`
	SegmentUID            string     `json:"segment_uid,omitempty"`
	Title                 string     `json:"title,omitempty"`
	WritingApplication    string     `json:"writing_application,omitempty"`
}

// Program is one program of an MPEG transport stream.
type Program struct {
	ProgramNumber   int    `json:"program_number"`
	ServiceName     string `json:"service_name,omitempty"`
	ServiceProvider string `json:"service_provider,omitempty"`
}
