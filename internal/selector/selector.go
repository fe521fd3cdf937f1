// Package selector implements the track and attachment selectors accepted by
// mkvpropedit.
//
// Both variant sets are closed: only the types declared here implement the
// interfaces, and every serialisation site switches over all of them.
package selector

import (
	"strconv"

	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
)

// Edit identifies the target of an `--edit` block: a track or the segment info.
type Edit interface {
	// Token returns the single argument that follows --edit.
	Token() string
	isEdit()
}

// Track identifies one track of the file being edited.
type Track interface {
	Edit
	isTrack()
}

// Compile-time verification of the closed variant sets.
var (
	_ Track = TrackPosition{}
	_ Track = TrackUID{}
	_ Track = TrackNumber{}
	_ Edit  = SegmentInfo{}

	_ Attachment = AttachmentID(0)
	_ Attachment = AttachmentUID{}
	_ Attachment = AttachmentName("")
	_ Attachment = AttachmentMIMEType("")
)

// TrackPosition selects the n-th track (1-based), optionally counting only
// tracks of one type.
type TrackPosition struct {
	Position int
	Type     identification.TrackType
}

// TrackUID selects a track by its UID.
type TrackUID struct {
	UID *identification.UID
}

// TrackNumber selects a track by its Matroska track number.
type TrackNumber struct {
	Number uint64
}

// SegmentInfo selects the segment information block.
type SegmentInfo struct{}

func (TrackPosition) isEdit()  {}
func (TrackPosition) isTrack() {}
func (TrackUID) isEdit()       {}
func (TrackUID) isTrack()      {}
func (TrackNumber) isEdit()    {}
func (TrackNumber) isTrack()   {}
func (SegmentInfo) isEdit()    {}

// Token implements Edit.
func (s TrackPosition) Token() string {
	return "track:" + s.Type.Abbreviation() + strconv.Itoa(s.Position)
}

// Token implements Edit.
func (s TrackUID) Token() string { return "track:=" + s.UID.String() }

// Token implements Edit.
func (s TrackNumber) Token() string { return "track:@" + strconv.FormatUint(s.Number, 10) }

// Token implements Edit.
func (SegmentInfo) Token() string { return "segment_info" }

// OfTrack derives the canonical selector for an identified track: its UID when
// known, else its track number, else its position in the file.
func OfTrack(t *identification.Track) Track {
	if uid := t.UID(); uid != nil {
		return TrackUID{UID: uid}
	}

	if n := t.Number(); n != nil {
		return TrackNumber{Number: *n}
	}

	return TrackPosition{Position: t.Position()}
}

// Attachment identifies one attachment of the file being edited.
type Attachment interface {
	// Token returns the selector as used by --update-attachment and friends.
	Token() string
	isAttachment()
}

// AttachmentID selects an attachment by its id.
type AttachmentID int64

// AttachmentUID selects an attachment by its UID.
type AttachmentUID struct {
	UID *identification.UID
}

// AttachmentName selects attachments by file name.
type AttachmentName string

// AttachmentMIMEType selects attachments by MIME type.
type AttachmentMIMEType string

func (AttachmentID) isAttachment()       {}
func (AttachmentUID) isAttachment()      {}
func (AttachmentName) isAttachment()     {}
func (AttachmentMIMEType) isAttachment() {}

// Token implements Attachment.
func (s AttachmentID) Token() string { return strconv.FormatInt(int64(s), 10) }

// Token implements Attachment.
func (s AttachmentUID) Token() string { return "=" + s.UID.String() }

// Token implements Attachment. The name is escaped.
func (s AttachmentName) Token() string { return "name:" + args.Escape(string(s)) }

// Token implements Attachment. The MIME type is escaped.
func (s AttachmentMIMEType) Token() string { return "mime-type:" + args.Escape(string(s)) }

// OfAttachment derives a selector for an identified attachment: its UID when
// known, else its id.
func OfAttachment(a *identification.Attachment) Attachment {
	if uid := a.UID(); uid != nil {
		return AttachmentUID{UID: uid}
	}

	return AttachmentID(a.ID)
}
