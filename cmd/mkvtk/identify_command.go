package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:   "identify FILE...",
		Short: "Show the tracks and attachments of media files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			infos, err := tk.IdentifyAll(cmd.Context(), args, parallel)
			if err != nil {
				return err
			}

			if ctx.json() {
				return writeJSON(cmd, infos)
			}

			out := cmd.OutOrStdout()

			for i, info := range infos {
				if i > 0 {
					fmt.Fprintln(out)
				}

				fmt.Fprintln(out, formatIdentification(info))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "Number of files identified at once")

	return cmd
}

func formatIdentification(info *mkvtoolnix.FileIdentification) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s", info.FileName, info.Container.Type)

	if d := info.Container.Duration(); d > 0 {
		fmt.Fprintf(&b, ", %s", d.Round(time.Millisecond))
	}

	b.WriteString(")\n")

	rows := make([][]string, 0, len(info.Tracks))
	for _, t := range info.Tracks {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			string(t.Type),
			t.Codec,
			t.LanguageCode(),
			t.Name(),
			flags(t),
		})
	}

	b.WriteString(renderTable(
		[]string{"ID", "Type", "Codec", "Language", "Name", "Flags"},
		rows,
		[]columnAlignment{alignRight},
	))

	if len(info.Attachments) > 0 {
		rows := make([][]string, 0, len(info.Attachments))
		for _, a := range info.Attachments {
			rows = append(rows, []string{
				strconv.FormatInt(a.ID, 10),
				a.FileName,
				a.ContentType,
				strconv.FormatInt(a.Size, 10),
			})
		}

		b.WriteString("\n")
		b.WriteString(renderTable(
			[]string{"ID", "File", "MIME type", "Size"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
		))
	}

	for _, w := range info.Warnings {
		fmt.Fprintf(&b, "\nwarning: %s", w)
	}

	for _, e := range info.Errors {
		fmt.Fprintf(&b, "\nerror: %s", e)
	}

	return b.String()
}

func flags(t *mkvtoolnix.Track) string {
	var out []string

	if t.IsDefault(false) {
		out = append(out, "default")
	}

	if t.IsForced(false) {
		out = append(out, "forced")
	}

	if !t.IsEnabled(true) {
		out = append(out, "disabled")
	}

	return strings.Join(out, ",")
}
