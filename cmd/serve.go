package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/meghashyamc/docsearch/api"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Build the index and serve the search API",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return api.Run(ctx, cfg)
		},
	}
}
