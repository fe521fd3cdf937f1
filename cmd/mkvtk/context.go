package main

import (
	"sync"

	"github.com/spf13/cobra"

	mkvtoolnix "github.com/wagiedev/mkvtoolnix-go"
)

type commandContext struct {
	configFlag  *string
	toolnixFlag *string
	levelFlag   *string
	jsonFlag    *bool

	once    sync.Once
	toolnix *mkvtoolnix.Toolnix
	err     error
}

func (c *commandContext) client(cmd *cobra.Command) (*mkvtoolnix.Toolnix, error) {
	c.once.Do(func() {
		cfg, err := loadConfig(*c.configFlag)
		if err != nil {
			c.err = err

			return
		}

		if *c.toolnixFlag != "" {
			cfg.ToolnixPath = *c.toolnixFlag
		}

		if *c.levelFlag != "" {
			cfg.LogLevel = *c.levelFlag
		}

		log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			c.err = err

			return
		}

		c.toolnix = mkvtoolnix.New(
			mkvtoolnix.WithLogger(log),
			mkvtoolnix.WithToolnixPath(cfg.ToolnixPath),
		)
	})

	return c.toolnix, c.err
}

func (c *commandContext) json() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}
