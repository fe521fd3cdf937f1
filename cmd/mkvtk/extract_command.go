package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

type extractFlags struct {
	tracks      []string
	attachments []string
	timestamps  []string
	chapters    string
	simple      bool
	tags        string
	cueSheet    bool
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var f extractFlags

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Extract tracks, attachments, chapters, tags or timestamps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			ec, err := buildExtract(args[0], &f)
			if err != nil {
				return err
			}

			return runCommand(cmd, tk, ec)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&f.tracks, "track", "t", nil, "Extract a track (ID:PATH)")
	flags.StringArrayVarP(&f.attachments, "attachment", "a", nil, "Extract an attachment (ID:PATH)")
	flags.StringArrayVar(&f.timestamps, "timestamps", nil, "Write track timestamps (ID:PATH)")
	flags.StringVar(&f.chapters, "chapters", "", "Write the chapters to PATH")
	flags.BoolVar(&f.simple, "simple", false, "Write chapters in the simple OGM format")
	flags.StringVar(&f.tags, "tags", "", "Write the tags to PATH")
	flags.BoolVar(&f.cueSheet, "cuesheet", false, "Also write a cue sheet for extracted tracks")

	return cmd
}

func buildExtract(source string, f *extractFlags) (*mkvtoolnix.ExtractCommand, error) {
	ec := mkvtoolnix.NewExtractCommand(source)

	tracks, err := parseTargets(f.tracks)
	if err != nil {
		return nil, err
	}

	attachments, err := parseTargets(f.attachments)
	if err != nil {
		return nil, err
	}

	timestamps, err := parseTargets(f.timestamps)
	if err != nil {
		return nil, err
	}

	if len(tracks) > 0 {
		ec.Tracks(func(m *mkvtoolnix.ExtractTracks) {
			m.CueSheet = f.cueSheet
			for _, t := range tracks {
				m.Add(t.id, t.path)
			}
		})
	}

	if len(attachments) > 0 {
		ec.Attachments(func(m *mkvtoolnix.ExtractAttachments) {
			for _, t := range attachments {
				m.Add(t.id, t.path)
			}
		})
	}

	if f.chapters != "" {
		ec.Chapters(f.chapters, f.simple)
	}

	if f.tags != "" {
		ec.Tags(f.tags)
	}

	if len(timestamps) > 0 {
		ec.Timestamps(func(m *mkvtoolnix.ExtractTimestamps) {
			for _, t := range timestamps {
				m.Add(t.id, t.path)
			}
		})
	}

	if len(ec.Args()) == 1 {
		return nil, fmt.Errorf("nothing to extract")
	}

	return ec, nil
}

type target struct {
	id   int64
	path string
}

// parseTargets decodes ID:PATH values.
func parseTargets(values []string) ([]target, error) {
	out := make([]target, 0, len(values))

	for _, v := range values {
		id, path, ok := strings.Cut(v, ":")
		if !ok || path == "" {
			return nil, fmt.Errorf("invalid target %q, want ID:PATH", v)
		}

		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id in %q", v)
		}

		out = append(out, target{id: n, path: path})
	}

	return out, nil
}
