package identification

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/mkvtoolnix-go/internal/errors"
)

func loadSample(t *testing.T) *FileIdentification {
	t.Helper()

	data, err := os.ReadFile("testdata/sample.json")
	require.NoError(t, err)

	f, err := Parse(data)
	require.NoError(t, err)

	return f
}

// TestParse_Sample tests decoding of a representative document.
func TestParse_Sample(t *testing.T) {
	f := loadSample(t)

	require.Equal(t, "/media/sample.mkv", f.FileName)
	require.Len(t, f.Tracks, 3)
	require.Len(t, f.Attachments, 1)
	require.Equal(t, []Chapter{{NumEntries: 2}}, f.Chapters)
	require.Empty(t, f.Errors)

	video := f.Tracks[0]
	require.Equal(t, TrackTypeVideo, video.Type)
	require.Equal(t, Dimension{Width: 1920, Height: 1080}, *video.Properties.DisplayDimensions)
	require.Equal(t, 33366666*time.Nanosecond, video.Properties.DefaultDuration.Std())
	require.Equal(t, 67*time.Millisecond, video.Properties.MinimumTimestamp.Std())
	require.Equal(t, "1", video.UID().String())
	require.Equal(t, uint64(1), *video.Number())
	require.True(t, video.IsDefault(false))
	require.False(t, video.IsForced(true))
}

// TestParse_UIDNumberOrString tests that UIDs beyond int64 decode from both
// JSON numbers and JSON strings.
func TestParse_UIDNumberOrString(t *testing.T) {
	f := loadSample(t)

	require.Equal(t, "17773189110686623810", f.Attachments[0].UID().String())
	require.Equal(t, "10592032113306683033", f.Tracks[1].UID().String())
	require.True(t, f.Tracks[1].UID().Equal(UIDFromUint64(10592032113306683033)))
}

// TestParse_LinksTracks tests the back-reference and 1-based position.
func TestParse_LinksTracks(t *testing.T) {
	f := loadSample(t)

	for i, track := range f.Tracks {
		require.Same(t, f, track.FileIdentification())
		require.Equal(t, i+1, track.Position())

		src, err := track.SourceFile()
		require.NoError(t, err)
		require.Equal(t, "/media/sample.mkv", src)
	}
}

// TestTrack_Unlinked tests that a hand-built track reports no source file.
func TestTrack_Unlinked(t *testing.T) {
	track := &Track{ID: 3, Type: TrackTypeAudio}

	require.Nil(t, track.FileIdentification())
	require.Zero(t, track.Position())

	_, err := track.SourceFile()
	require.ErrorIs(t, err, errors.ErrNoFileIdentification)
	require.Nil(t, track.UID())
	require.Nil(t, track.Number())
	require.True(t, track.IsEnabled(true))
	require.Empty(t, track.Name())
	require.Empty(t, track.LanguageCode())
}

func TestParse_Container(t *testing.T) {
	f := loadSample(t)

	require.True(t, f.Container.Recognized)
	require.Equal(t, "Matroska", f.Container.Type)
	require.Equal(t, 9090*time.Millisecond, f.Container.Duration())

	props := f.Container.Properties
	require.Equal(t, time.Date(2019, 3, 17, 14, 33, 35, 0, time.UTC), props.DateUTC.UTC())
	require.True(t, props.DateLocal.Equal(*props.DateUTC))
	require.Equal(t, "mkvmerge v32.0.0 ('Astral Progressions') 64-bit", props.WritingApplication)
}

func TestFileIdentification_Lookups(t *testing.T) {
	f := loadSample(t)

	audio := f.TracksOfType(TrackTypeAudio)
	require.Len(t, audio, 1)
	require.Equal(t, "Italiano", audio[0].Name())
	require.Equal(t, "ita", audio[0].LanguageCode())
	require.Equal(t, "it", audio[0].Properties.LanguageIETF)

	require.Same(t, f.Tracks[2], f.Track(2))
	require.Nil(t, f.Track(9))
	require.Equal(t, "attach.txt", f.Attachment(0).FileName)
	require.Nil(t, f.Attachment(1))
}

// TestParse_InvalidScalars tests that a malformed scalar fails the call with
// a typed error.
func TestParse_InvalidScalars(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind string
	}{
		{
			name: "uid",
			doc:  `{"tracks":[{"codec":"x","id":0,"type":"video","properties":{"uid":"12ab"}}]}`,
			kind: "uid",
		},
		{
			name: "duration",
			doc:  `{"container":{"recognized":true,"supported":true,"properties":{"duration":"soon"}}}`,
			kind: "duration",
		},
		{
			name: "dimension",
			doc:  `{"tracks":[{"codec":"x","id":0,"type":"video","properties":{"pixel_dimensions":"1920"}}]}`,
			kind: "dimension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			decodeErr, ok := stderrors.AsType[*errors.JSONDecodeError](err)
			require.True(t, ok)
			require.Equal(t, tt.doc, decodeErr.RawData)

			scalarErr, ok := stderrors.AsType[*errors.ScalarParseError](err)
			require.True(t, ok)
			require.Equal(t, tt.kind, scalarErr.Kind)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"tracks":[`))
	require.Error(t, err)
	require.IsType(t, &errors.JSONDecodeError{}, err)
}

// TestMarshal_PreservesWireFormat tests that re-encoding keeps UIDs numeric,
// durations in nanoseconds and dimensions as strings.
func TestMarshal_PreservesWireFormat(t *testing.T) {
	f := loadSample(t)

	data, err := json.Marshal(f.Tracks[0].Properties)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.JSONEq(t, `1`, string(raw["uid"]))
	require.JSONEq(t, `33366666`, string(raw["default_duration"]))
	require.JSONEq(t, `"1920x1080"`, string(raw["display_dimensions"]))
}

func TestTrackType_Abbreviation(t *testing.T) {
	require.Equal(t, "a", TrackTypeAudio.Abbreviation())
	require.Equal(t, "v", TrackTypeVideo.Abbreviation())
	require.Equal(t, "s", TrackTypeSubtitles.Abbreviation())
	require.Equal(t, "b", TrackTypeButtons.Abbreviation())
	require.Empty(t, TrackType("data").Abbreviation())
}
