// Package content resolves the full text and headings of a page from its URL.
package content

import (
	"context"
	"fmt"

	"github.com/meghashyamc/docsearch/logger"
)

type Content struct {
	FullText string   `json:"full_text"`
	Headings []string `json:"headings"`
}

// Fetcher resolves page content by URL. Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Content, error)
}

type FetcherFunc func(ctx context.Context, url string) (Content, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) (Content, error) {
	return f(ctx, url)
}

// SoftFetch never fails: any error, or a panic inside the fetcher, degrades to empty content
// and a warning. The second return value reports whether the fetch succeeded.
func SoftFetch(ctx context.Context, logger logger.Logger, fetcher Fetcher, url string) (content Content, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("content fetch panicked", "url", url, "err", fmt.Sprint(r))
			content, ok = Content{}, false
		}
	}()

	fetched, err := fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("failed to fetch content", "url", url, "err", err.Error())
		return Content{}, false
	}

	return fetched, true
}
