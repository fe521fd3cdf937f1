package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

type mergeFlags struct {
	output          string
	title           string
	defaultLanguage string
	video           string
	audio           string
	subtitles       string
	noTrackTags     bool
	webm            bool
}

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var f mergeFlags

	cmd := &cobra.Command{
		Use:   "merge -o OUTPUT INPUT...",
		Short: "Multiplex input files into one Matroska file",
		Long: `Multiplex input files into one Matroska file.

Track selections apply to every input: "all", "none", a list of ids or
language codes such as "1,eng", or an exclusion list such as "!2".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			mc, err := buildMerge(cmd, tk, args, &f)
			if err != nil {
				return err
			}

			return runCommand(cmd, tk, mc)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "Output file")
	flags.StringVar(&f.title, "title", "", "Segment title")
	flags.StringVar(&f.defaultLanguage, "default-language", "", "Language for tracks without one")
	flags.StringVar(&f.video, "video", "", "Video track selection")
	flags.StringVar(&f.audio, "audio", "", "Audio track selection")
	flags.StringVar(&f.subtitles, "subtitles", "", "Subtitle track selection")
	flags.BoolVar(&f.noTrackTags, "no-track-tags", false, "Do not copy track tags")
	flags.BoolVar(&f.webm, "webm", false, "Write a WebM compliant file")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func buildMerge(cmd *cobra.Command, tk *mkvtoolnix.Toolnix, inputs []string, f *mergeFlags) (*mkvtoolnix.MergeCommand, error) {
	mc := mkvtoolnix.NewMergeCommand(f.output)

	mc.Global.Title = f.title
	mc.Global.WebM = f.webm

	if f.defaultLanguage != "" {
		l, err := tk.LookupLanguage(cmd.Context(), f.defaultLanguage)
		if err != nil {
			return nil, err
		}

		mc.Global.SetDefaultLanguage(l)
	}

	lookup := func(code string) (mkvtoolnix.Language, error) {
		return tk.LookupLanguage(cmd.Context(), code)
	}

	for _, path := range inputs {
		var selErr error

		mc.AddInputFile(path, func(in *mkvtoolnix.InputFile) {
			selErr = applySelections(in, f, lookup)
		})

		if selErr != nil {
			return nil, selErr
		}
	}

	return mc, nil
}

// languageLookup resolves a language code, failing for unknown codes.
type languageLookup func(code string) (mkvtoolnix.Language, error)

func applySelections(in *mkvtoolnix.InputFile, f *mergeFlags, lookup languageLookup) error {
	selections := []struct {
		name  string
		value string
		sel   *mkvtoolnix.TrackCopy
	}{
		{"video", f.video, in.Video},
		{"audio", f.audio, in.Audio},
		{"subtitles", f.subtitles, in.Subtitles},
	}

	for _, s := range selections {
		if s.value == "" {
			continue
		}

		if err := selectTracks(s.sel, s.value, lookup); err != nil {
			return fmt.Errorf("--%s: %w", s.name, err)
		}
	}

	if f.noTrackTags {
		in.TrackTags.ExcludeAll()
	}

	return nil
}

// selectTracks applies a textual selection to sel. Language elements are
// resolved through lookup, so an unknown code fails before mkvmerge runs.
func selectTracks(sel *mkvtoolnix.TrackCopy, value string, lookup languageLookup) error {
	switch strings.TrimSpace(value) {
	case "all", "none":
		return sel.Select(value)
	}

	mode, refs, err := mkvtoolnix.ParseTrackSelection(value)
	if err != nil {
		return err
	}

	langs := make(map[int]mkvtoolnix.Language)

	for i, ref := range refs {
		tl, ok := ref.(mkvtoolnix.TrackLanguage)
		if !ok {
			continue
		}

		l, err := lookup(tl.Code)
		if err != nil {
			return err
		}

		langs[i] = l
	}

	fill := func(list *mkvtoolnix.TrackList) {
		for i, ref := range refs {
			if l, ok := langs[i]; ok {
				list.AddByLanguage(l)
			} else if id, ok := ref.(mkvtoolnix.TrackID); ok {
				list.AddByID(int64(id))
			}
		}
	}

	if mode == mkvtoolnix.CopyInclude {
		sel.Include(fill)
	} else {
		sel.Exclude(fill)
	}

	return nil
}
