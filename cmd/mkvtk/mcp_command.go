package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newMCPCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve identify, version, list_languages and propedit_set as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tk, err := ctx.client(cmd)
			if err != nil {
				return err
			}

			return tk.ServeMCP(cmd.Context(), "mkvtk", version)
		},
	}
}
