package propedit

import (
	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	"github.com/wagiedev/mkvtoolnix-go/internal/selector"
)

// AttachmentMetadata holds the optional fields written alongside an attachment.
// Empty strings and a nil UID are omitted.
type AttachmentMetadata struct {
	Name        string
	MIMEType    string
	Description string
	UID         *identification.UID
}

// Args emits the present fields in the fixed order name, MIME type,
// description, uid.
func (m AttachmentMetadata) Args() []string {
	out := make([]string, 0, 8)

	if m.Name != "" {
		out = append(out, "--attachment-name", m.Name)
	}

	if m.MIMEType != "" {
		out = append(out, "--attachment-mime-type", m.MIMEType)
	}

	if m.Description != "" {
		out = append(out, "--attachment-description", m.Description)
	}

	if m.UID != nil {
		out = append(out, "--attachment-uid", m.UID.String())
	}

	return out
}

// AttachmentAction is one attachment operation.
type AttachmentAction interface {
	args.Emitter
	isAttachmentAction()
}

// Compile-time verification of the closed attachment action set.
var (
	_ AttachmentAction = AddAttachment{}
	_ AttachmentAction = ReplaceAttachment{}
	_ AttachmentAction = UpdateAttachment{}
	_ AttachmentAction = DeleteAttachment{}
)

// AddAttachment embeds a new file.
type AddAttachment struct {
	File     string
	Metadata AttachmentMetadata
}

// ReplaceAttachment swaps the content of the selected attachments for File.
type ReplaceAttachment struct {
	Selector selector.Attachment
	File     string
	Metadata AttachmentMetadata
}

// UpdateAttachment rewrites metadata of the selected attachments.
type UpdateAttachment struct {
	Selector selector.Attachment
	Metadata AttachmentMetadata
}

// DeleteAttachment removes the selected attachments.
type DeleteAttachment struct {
	Selector selector.Attachment
}

func (AddAttachment) isAttachmentAction()     {}
func (ReplaceAttachment) isAttachmentAction() {}
func (UpdateAttachment) isAttachmentAction()  {}
func (DeleteAttachment) isAttachmentAction()  {}

// Args implements args.Emitter.
func (a AddAttachment) Args() []string {
	return append(a.Metadata.Args(), "--add-attachment", args.AbsPath(a.File))
}

// Args implements args.Emitter.
func (a ReplaceAttachment) Args() []string {
	return append(a.Metadata.Args(), "--replace-attachment", a.Selector.Token()+":"+args.AbsPath(a.File))
}

// Args implements args.Emitter.
func (a UpdateAttachment) Args() []string {
	return append(a.Metadata.Args(), "--update-attachment", a.Selector.Token())
}

// Args implements args.Emitter.
func (a DeleteAttachment) Args() []string {
	return []string{"--delete-attachment", a.Selector.Token()}
}
