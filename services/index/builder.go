package index

import (
	"context"
	"time"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/metrics"
	"github.com/meghashyamc/docsearch/services/content"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

const defaultFetchConcurrency = 8

const (
	SourceDiscovered = "discovered"
	SourceStatic     = "static"
)

type BuildStats struct {
	Source        string        `json:"source"`
	Items         int           `json:"items"`
	FetchFailures int           `json:"fetch_failures"`
	Duration      time.Duration `json:"duration"`
}

// Builder assembles a catalog from the static fallback or the discovered items, enriching
// every item with fetched content.
type Builder struct {
	logger      logger.Logger
	fetcher     content.Fetcher
	concurrency int
}

func NewBuilder(logger logger.Logger, fetcher content.Fetcher, concurrency int) *Builder {
	if concurrency <= 0 {
		concurrency = defaultFetchConcurrency
	}

	return &Builder{
		logger:      logger,
		fetcher:     fetcher,
		concurrency: concurrency,
	}
}

// Build never fails: fetch errors degrade single items to empty content. A non-empty
// discovered list fully replaces the static fallback; the two are never merged. Items are
// validated before any fetch, so dropped items never reach the fetcher.
func (b *Builder) Build(ctx context.Context, static []catalog.Item, discovered []catalog.Item) (*catalog.Catalog, BuildStats) {
	start := time.Now()
	stats := BuildStats{Source: SourceStatic}

	items := static
	if len(discovered) > 0 {
		stats.Source = SourceDiscovered
		items = discovered
		if len(static) > 0 {
			b.logger.Info("discovered catalog replaces static fallback", "discovered", len(discovered), "static", len(static))
		}
	}

	enriched, failures := b.enrich(ctx, catalog.Validate(b.logger, items))
	cat := catalog.New(b.logger, enriched)

	stats.Items = cat.Len()
	stats.FetchFailures = failures
	stats.Duration = time.Since(start)
	metrics.FetchFailures.Add(float64(failures))

	b.logger.Info("catalog built", "source", stats.Source, "items", stats.Items, "fetch_failures", failures, "duration", stats.Duration.String())
	return cat, stats
}

// enrich fetches content for every item with at most b.concurrency fetches in flight.
// Each goroutine writes only its own slot, so no collection is shared between completions.
func (b *Builder) enrich(ctx context.Context, items []catalog.Item) ([]catalog.Item, int) {
	enriched := make([]catalog.Item, len(items))
	failed := make([]bool, len(items))

	var group errgroup.Group
	group.SetLimit(b.concurrency)

	for i, item := range items {
		i, item := i, item
		group.Go(func() error {
			fetched, ok := content.SoftFetch(ctx, b.logger, b.fetcher, item.URL)
			if fetched.FullText != "" {
				item.FullText = fetched.FullText
			}
			if len(fetched.Headings) > 0 {
				item.Headings = fetched.Headings
			}
			enriched[i] = normalize(item)
			failed[i] = !ok
			return nil
		})
	}
	group.Wait()

	failures := 0
	for _, f := range failed {
		if f {
			failures++
		}
	}

	return enriched, failures
}

// normalize puts every text field in NFC so that offsets and comparisons are stable.
func normalize(item catalog.Item) catalog.Item {
	item.Title = norm.NFC.String(item.Title)
	item.Content = norm.NFC.String(item.Content)
	item.FullText = norm.NFC.String(item.FullText)

	headings := make([]string, len(item.Headings))
	for i, heading := range item.Headings {
		headings[i] = norm.NFC.String(heading)
	}
	item.Headings = headings

	tags := make([]string, len(item.Tags))
	for i, tag := range item.Tags {
		tags[i] = norm.NFC.String(tag)
	}
	item.Tags = tags

	return item
}
