package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meghashyamc/docsearch/db/kvdb"
	"github.com/meghashyamc/docsearch/logger"
)

// KVFetcher reads content from a snapshot written at site build time.
type KVFetcher struct {
	store kvdb.DB
}

func NewKVFetcher(store kvdb.DB) *KVFetcher {
	return &KVFetcher{store: store}
}

func (k *KVFetcher) Fetch(ctx context.Context, url string) (Content, error) {
	if err := ctx.Err(); err != nil {
		return Content{}, err
	}

	value, err := k.store.Get(kvdb.ContentBucket, url)
	if err != nil {
		return Content{}, err
	}

	var content Content
	if err := json.Unmarshal([]byte(value), &content); err != nil {
		return Content{}, fmt.Errorf("failed to unmarshal content for %s: %w", url, err)
	}

	return content, nil
}

// Snapshot stores the content of every url into the store. Pages that fail to fetch are
// skipped and counted; only store errors abort the snapshot.
func Snapshot(ctx context.Context, logger logger.Logger, store kvdb.DB, fetcher Fetcher, urls []string) (int, error) {
	written := 0
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		content, ok := SoftFetch(ctx, logger, fetcher, url)
		if !ok {
			continue
		}

		data, err := json.Marshal(content)
		if err != nil {
			return written, fmt.Errorf("failed to marshal content for %s: %w", url, err)
		}
		if err := store.Set(kvdb.ContentBucket, url, string(data)); err != nil {
			return written, err
		}
		written++
	}

	logger.Info("content snapshot written", "pages", written, "requested", len(urls))
	return written, nil
}
