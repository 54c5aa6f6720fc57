package main

import (
	"context"
	"fmt"
	"time"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/config"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/services/index"
	"github.com/meghashyamc/docsearch/services/search"
	"github.com/meghashyamc/docsearch/services/sources"
)

const buildTimeout = 5 * time.Minute

// buildEngine builds the configured index in the foreground and returns a query engine
// over it, plus a function releasing the content source.
func buildEngine(ctx context.Context, logger logger.Logger, cfg *config.Config) (*search.Service, func(), error) {
	fetcher, closeFetcher, err := sources.NewFetcher(logger, cfg)
	if err != nil {
		return nil, nil, err
	}

	discovered, err := sources.Discover(logger, cfg)
	if err != nil {
		logger.Warn("catalog discovery failed, using static fallback", "err", err.Error())
	}

	builder := index.NewBuilder(logger, fetcher, cfg.GetFetchConcurrency())
	indexService := index.New(ctx, logger, builder, cfg.GetSearchBackend())
	if err := indexService.Build(catalog.StaticFallback(), discovered); err != nil {
		closeFetcher()
		return nil, nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, buildTimeout)
	defer cancel()
	if err := indexService.WaitForFirstBuild(waitCtx); err != nil {
		closeFetcher()
		return nil, nil, fmt.Errorf("index build failed: %w", err)
	}

	cleanup := func() {
		indexService.Current().DB.Close()
		closeFetcher()
	}
	return search.New(logger, indexService, cfg.GetCacheSize()), cleanup, nil
}
