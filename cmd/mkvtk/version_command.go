package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the versions of mkvmerge, mkvpropedit and mkvextract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			versions, err := tk.Versions(cmd.Context())
			if err != nil {
				return err
			}

			if ctx.json() {
				return writeJSON(cmd, versions)
			}

			rows := make([][]string, 0, len(versions))
			for _, v := range versions {
				bits := ""
				if v.Bits > 0 {
					bits = strconv.Itoa(v.Bits) + "-bit"
				}

				rows = append(rows, []string{v.Program, v.Version.String(), v.Codename, bits})
			}

			cmd.Println(renderTable([]string{"Program", "Version", "Codename", "Build"}, rows, nil))

			return nil
		},
	}
}
