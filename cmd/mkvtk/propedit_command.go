package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

type propEditFlags struct {
	target    string
	set       []string
	deletes   []string
	language  string
	name      string
	title     string
	isDefault string
	isForced  string
	full      bool
	attach    []string
	detach    []string
}

func newPropEditCommand(ctx *commandContext) *cobra.Command {
	var f propEditFlags

	cmd := &cobra.Command{
		Use:   "propedit FILE",
		Short: "Edit track and segment properties in place",
		Long: `Edit track and segment properties in place.

The --edit selector is a track number (2 or @2), a track position by type
(a1, v1, s2, b1), a track UID (=1234) or "info" for the segment information.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			pc, err := buildPropEdit(cmd, tk, args[0], &f)
			if err != nil {
				return err
			}

			return runCommand(cmd, tk, pc)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.target, "edit", "e", "info", "Element to edit")
	flags.StringArrayVarP(&f.set, "set", "s", nil, "Set a property (name=value)")
	flags.StringArrayVarP(&f.deletes, "delete", "d", nil, "Delete a property")
	flags.StringVar(&f.language, "language", "", "Set the language (ISO 639 code)")
	flags.StringVar(&f.name, "name", "", "Set the track name")
	flags.StringVar(&f.title, "title", "", "Set the segment title")
	flags.StringVar(&f.isDefault, "default", "", "Set the default flag (yes/no)")
	flags.StringVar(&f.isForced, "forced", "", "Set the forced flag (yes/no)")
	flags.BoolVar(&f.full, "full-parse", false, "Parse the whole file instead of the meta seek")
	flags.StringArrayVar(&f.attach, "add-attachment", nil, "Attach a file")
	flags.StringArrayVar(&f.detach, "delete-attachment", nil, "Delete the attachment with this id")

	return cmd
}

func buildPropEdit(cmd *cobra.Command, tk *mkvtoolnix.Toolnix, file string, f *propEditFlags) (*mkvtoolnix.PropEditCommand, error) {
	sel, err := parseEditSelector(f.target)
	if err != nil {
		return nil, err
	}

	var lang *mkvtoolnix.Language

	if f.language != "" {
		l, err := tk.LookupLanguage(cmd.Context(), f.language)
		if err != nil {
			return nil, err
		}

		lang = &l
	}

	var isDefault, isForced *bool

	if isDefault, err = parseYesNo("default", f.isDefault); err != nil {
		return nil, err
	}

	if isForced, err = parseYesNo("forced", f.isForced); err != nil {
		return nil, err
	}

	var setErr error

	pc := mkvtoolnix.NewPropEditCommand(file).EditProperties(sel, func(e *mkvtoolnix.PropertyEdit) {
		for _, kv := range f.set {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || name == "" {
				setErr = fmt.Errorf("invalid --set %q, want name=value", kv)

				return
			}

			e.Set(name, value)
		}

		for _, name := range f.deletes {
			e.Delete(name)
		}

		if lang != nil {
			e.SetLanguage(*lang)
		}

		if f.name != "" {
			e.SetName(f.name)
		}

		if f.title != "" {
			e.SetTitle(f.title)
		}

		if isDefault != nil {
			e.SetIsDefault(*isDefault)
		}

		if isForced != nil {
			e.SetIsForced(*isForced)
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	if f.full {
		pc.WithParseMode(mkvtoolnix.ParseModeFull)
	}

	for _, path := range f.attach {
		pc.AddAttachment(path, mkvtoolnix.AttachmentMetadata{})
	}

	for _, id := range f.detach {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid attachment id %q", id)
		}

		pc.DeleteAttachment(mkvtoolnix.AttachmentID(n))
	}

	return pc, nil
}

// parseEditSelector decodes the --edit value.
func parseEditSelector(s string) (mkvtoolnix.EditSelector, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "info" || s == "segment_info":
		return mkvtoolnix.SegmentInfo{}, nil
	case strings.HasPrefix(s, "="):
		uid, err := mkvtoolnix.ParseUID(s[1:])
		if err != nil {
			return nil, err
		}

		return mkvtoolnix.TrackUIDSelector{UID: uid}, nil
	case strings.HasPrefix(s, "@"):
		n, err := strconv.ParseUint(s[1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid track number %q", s)
		}

		return mkvtoolnix.TrackNumber{Number: n}, nil
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return mkvtoolnix.TrackNumber{Number: n}, nil
	}

	if len(s) >= 2 {
		types := map[byte]mkvtoolnix.TrackType{
			'a': mkvtoolnix.TrackTypeAudio,
			'v': mkvtoolnix.TrackTypeVideo,
			's': mkvtoolnix.TrackTypeSubtitles,
			'b': mkvtoolnix.TrackTypeButtons,
		}

		if typ, ok := types[s[0]]; ok {
			pos, err := strconv.Atoi(s[1:])
			if err == nil && pos > 0 {
				return mkvtoolnix.TrackPosition{Position: pos, Type: typ}, nil
			}
		}
	}

	return nil, fmt.Errorf("invalid edit selector %q", s)
}

func parseYesNo(flag, v string) (*bool, error) {
	var b bool

	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return nil, nil
	case "yes", "true", "1":
		b = true
	case "no", "false", "0":
		b = false
	default:
		return nil, fmt.Errorf("invalid --%s %q, want yes or no", flag, v)
	}

	return &b, nil
}
