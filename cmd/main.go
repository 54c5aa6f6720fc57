package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/meghashyamc/docsearch/config"
)

func main() {
	godotenv.Load()

	app := &cli.Command{
		Name:  "docsearch",
		Usage: "Fuzzy search over a documentation site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "Configuration environment (reads config/config.<env>.yaml)",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			searchCommand(),
			snapshotCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
