package mkvtoolnix

import (
	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/extract"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	"github.com/wagiedev/mkvtoolnix-go/internal/language"
	"github.com/wagiedev/mkvtoolnix-go/internal/merge"
	"github.com/wagiedev/mkvtoolnix-go/internal/propedit"
	"github.com/wagiedev/mkvtoolnix-go/internal/selector"
	"github.com/wagiedev/mkvtoolnix-go/internal/subprocess"
)

// ===== Binaries =====

// Binary names one of the toolkit executables.
type Binary = cli.Binary

const (
	BinaryMerge    = cli.Merge
	BinaryPropEdit = cli.PropEdit
	BinaryExtract  = cli.Extract
)

// Version is a major.minor.patch triple.
type Version = cli.Version

// VersionInfo is the parsed --version banner of a binary.
type VersionInfo = cli.VersionInfo

// ===== Execution =====

// Command is a built invocation: a binary and its argument vector.
// The merge, property-edit and extract builders all implement it.
type Command = subprocess.Command

// Result is the handle of one process run.
type Result = subprocess.Result

// Line is a classified output line.
type Line = subprocess.Line

// LineKind classifies an output line.
type LineKind = subprocess.LineKind

const (
	LineInfo     = subprocess.KindInfo
	LineWarning  = subprocess.KindWarning
	LineError    = subprocess.KindError
	LineProgress = subprocess.KindProgress
)

// ===== Identification =====

// FileIdentification is the decoded `mkvmerge -J` document.
type FileIdentification = identification.FileIdentification

// Track is an identified track.
type Track = identification.Track

// TrackProperties are the optional properties of a track.
type TrackProperties = identification.TrackProperties

// Attachment is an identified attachment.
type Attachment = identification.Attachment

// Container describes the identified container.
type Container = identification.Container

// ContainerProperties are the optional properties of a container.
type ContainerProperties = identification.ContainerProperties

// TrackType is the media kind of a track.
type TrackType = identification.TrackType

const (
	TrackTypeVideo     = identification.TrackTypeVideo
	TrackTypeAudio     = identification.TrackTypeAudio
	TrackTypeSubtitles = identification.TrackTypeSubtitles
	TrackTypeButtons   = identification.TrackTypeButtons
)

// UID is an arbitrary-precision unique id.
type UID = identification.UID

// Duration is a nanosecond duration as written by mkvmerge.
type Duration = identification.Duration

// Dimension is a WxH pixel size.
type Dimension = identification.Dimension

// ParseUID parses a decimal UID.
func ParseUID(s string) (*UID, error) { return identification.ParseUID(s) }

// ParseIdentification decodes `mkvmerge -J` output.
func ParseIdentification(data []byte) (*FileIdentification, error) {
	return identification.Parse(data)
}

// ===== Languages =====

// Language is one row of the language table.
type Language = language.Language

// LanguageTable is the parsed output of `mkvmerge --list-languages`.
type LanguageTable = language.Table

// ===== Selectors =====

// EditSelector is the target of an mkvpropedit --edit block.
type EditSelector = selector.Edit

// TrackSelector selects one track.
type TrackSelector = selector.Track

// TrackPosition selects the n-th track of a type, counting from 1.
type TrackPosition = selector.TrackPosition

// TrackUIDSelector selects a track by UID.
type TrackUIDSelector = selector.TrackUID

// TrackNumber selects a track by its track number.
type TrackNumber = selector.TrackNumber

// SegmentInfo selects the segment information.
type SegmentInfo = selector.SegmentInfo

// AttachmentSelector selects one or more attachments.
type AttachmentSelector = selector.Attachment

// AttachmentID selects an attachment by id.
type AttachmentID = selector.AttachmentID

// AttachmentUIDSelector selects an attachment by UID.
type AttachmentUIDSelector = selector.AttachmentUID

// AttachmentName selects attachments by file name.
type AttachmentName = selector.AttachmentName

// AttachmentMIMEType selects attachments by MIME type.
type AttachmentMIMEType = selector.AttachmentMIMEType

// SelectTrack returns the most specific selector for an identified track.
func SelectTrack(t *Track) TrackSelector { return selector.OfTrack(t) }

// SelectAttachment returns the most specific selector for an identified attachment.
func SelectAttachment(a *Attachment) AttachmentSelector { return selector.OfAttachment(a) }

// ===== mkvmerge =====

type (
	MergeCommand       = merge.Command
	MergeGlobalOptions = merge.GlobalOptions
	OutputControl      = merge.OutputControl
	InputFile          = merge.InputFile
	TrackCopy          = merge.TrackCopy
	TrackList          = merge.TrackList
	TrackOptions       = merge.TrackOptions
	CopyMode           = merge.CopyMode
	TrackRef           = merge.TrackRef
	TrackID            = merge.TrackID
	TrackLanguage      = merge.TrackLanguage
	DriftRatio         = merge.DriftRatio
)

const (
	CopyExclude = merge.CopyExclude
	CopyInclude = merge.CopyInclude
	// AllTracks is the track id that targets every track of an input file.
	AllTracks = merge.AllTracks
)

// NewMergeCommand returns an mkvmerge command writing to output.
func NewMergeCommand(output string) *MergeCommand { return merge.New(output) }

// ParseTrackSelection decodes a track-copy value such as "!1,eng".
func ParseTrackSelection(value string) (CopyMode, []TrackRef, error) {
	return merge.ParseTrackSelection(value)
}

// ===== mkvpropedit =====

type (
	PropEditCommand       = propedit.Command
	PropEditGlobalOptions = propedit.GlobalOptions
	PropertyEdit          = propedit.PropertyEdit
	AttachmentMetadata    = propedit.AttachmentMetadata
	ParseMode             = propedit.ParseMode
)

const (
	ParseModeFast = propedit.ParseModeFast
	ParseModeFull = propedit.ParseModeFull
)

// NewPropEditCommand returns an mkvpropedit command editing file.
func NewPropEditCommand(file string) *PropEditCommand { return propedit.New(file) }

// ===== mkvextract =====

type (
	ExtractCommand       = extract.Command
	ExtractGlobalOptions = extract.GlobalOptions
	ExtractTracks        = extract.Tracks
	ExtractAttachments   = extract.Attachments
	ExtractTimestamps    = extract.Timestamps
)

// NewExtractCommand returns an mkvextract command reading source.
func NewExtractCommand(source string) *ExtractCommand { return extract.New(source) }

// ===== Escaping =====

// Escape encodes a value for the toolkit's escaped-argument contexts.
func Escape(s string) string { return args.Escape(s) }

// Unescape decodes a value produced by Escape.
func Unescape(s string) (string, error) { return args.Unescape(s) }
