// Package sources wires the configured catalog discovery and content source.
package sources

import (
	"fmt"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/config"
	"github.com/meghashyamc/docsearch/db/kvdb"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/services/content"
)

const (
	SourceStatic   = "static"
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourceSnapshot = "snapshot"
)

// NewFetcher returns the content fetcher selected by content.source and a function
// releasing whatever it holds open.
func NewFetcher(logger logger.Logger, cfg *config.Config) (content.Fetcher, func() error, error) {
	noop := func() error { return nil }

	switch source := cfg.GetContentSource(); source {
	case "", SourceStatic:
		return content.NewStaticFetcher(content.DefaultPages()), noop, nil

	case SourceFile:
		if cfg.GetDocsPath() == "" {
			return nil, nil, fmt.Errorf("content source %q needs catalog.docs_path", source)
		}
		return content.NewFileFetcher(cfg.GetDocsPath(), cfg.GetDocsURLPrefix()), noop, nil

	case SourceHTTP:
		if cfg.GetContentBaseURL() == "" {
			return nil, nil, fmt.Errorf("content source %q needs content.base_url", source)
		}
		return content.NewHTTPFetcher(cfg.GetContentBaseURL()), noop, nil

	case SourceSnapshot:
		store, err := kvdb.New(logger, cfg.GetSnapshotPath(), true)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open content snapshot: %w", err)
		}
		return content.NewKVFetcher(store), store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown content source %q", source)
	}
}

// Discover returns the catalog discovered from the site metadata export, or else from the
// markdown docs root. With neither configured it returns no items, so the static fallback
// is used.
func Discover(logger logger.Logger, cfg *config.Config) ([]catalog.Item, error) {
	opts := catalog.DiscoverOptions{
		Locales:       cfg.GetLocales(),
		DefaultLocale: cfg.GetDefaultLocale(),
	}

	if registryPath := cfg.GetRegistryPath(); registryPath != "" {
		registry, err := catalog.LoadRegistry(registryPath)
		if err != nil {
			return nil, err
		}
		items := registry.Items(opts)
		logger.Info("catalog discovered from registry", "path", registryPath, "items", len(items))
		return items, nil
	}

	if docsPath := cfg.GetDocsPath(); docsPath != "" {
		items, err := catalog.ScanDocs(logger, docsPath, cfg.GetDocsURLPrefix(), opts)
		if err != nil {
			return nil, err
		}
		logger.Info("catalog discovered from docs", "path", docsPath, "items", len(items))
		return items, nil
	}

	logger.Debug("no catalog source configured")
	return nil, nil
}
