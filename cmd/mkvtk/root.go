package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag  string
		toolnixFlag string
		levelFlag   string
		jsonFlag    bool
	)

	ctx := &commandContext{
		configFlag:  &configFlag,
		toolnixFlag: &toolnixFlag,
		levelFlag:   &levelFlag,
		jsonFlag:    &jsonFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "mkvtk",
		Short:         "Inspect and edit Matroska files with mkvtoolnix",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&toolnixFlag, "toolnix-path", "", "Directory holding the mkvtoolnix binaries")
	flags.StringVar(&levelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	flags.BoolVar(&jsonFlag, "json", false, "Write JSON instead of tables")

	rootCmd.AddCommand(newIdentifyCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))
	rootCmd.AddCommand(newLanguagesCommand(ctx))
	rootCmd.AddCommand(newPropEditCommand(ctx))
	rootCmd.AddCommand(newMergeCommand(ctx))
	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newMCPCommand(ctx))

	return rootCmd
}
