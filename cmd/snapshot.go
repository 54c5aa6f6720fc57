package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/kvdb"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/services/content"
	"github.com/meghashyamc/docsearch/services/sources"
)

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Fetch page content from the configured source into a snapshot file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "Snapshot file (defaults to content.snapshot_path)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := logger.New(cfg.GetLogLevel())

			if cfg.GetContentSource() == sources.SourceSnapshot {
				return fmt.Errorf("cannot snapshot from a snapshot, set content.source to static, file or http")
			}

			out := c.String("out")
			if out == "" {
				out = cfg.GetSnapshotPath()
			}

			fetcher, closeFetcher, err := sources.NewFetcher(log, cfg)
			if err != nil {
				return err
			}
			defer closeFetcher()

			items, err := sources.Discover(log, cfg)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				items = catalog.StaticFallback()
			}

			urls := make([]string, 0, len(items))
			for _, item := range items {
				urls = append(urls, item.URL)
			}

			store, err := kvdb.New(log, out, false)
			if err != nil {
				return err
			}
			defer store.Close()

			written, err := content.Snapshot(ctx, log, store, fetcher, urls)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d of %d pages to %s\n", written, len(urls), out)
			return nil
		},
	}
}
