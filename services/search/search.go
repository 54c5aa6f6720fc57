package search

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/metrics"
	"github.com/meghashyamc/docsearch/services/index"
)

const (
	// MaxResults caps every result list; it is not configurable per query.
	MaxResults = 10
	// MinQueryLength is the shortest trimmed query, in characters, that reaches the index.
	MinQueryLength = 2
)

type IndexProvider interface {
	Current() *index.Index
}

type cacheKey struct {
	version uint64
	locale  string
	query   string
}

type Service struct {
	logger  logger.Logger
	indexes IndexProvider
	cache   *lru.Cache[cacheKey, []searchdb.Result]
}

// New creates the query engine. cacheSize <= 0 disables result caching.
func New(logger logger.Logger, indexes IndexProvider, cacheSize int) *Service {
	service := &Service{
		logger:  logger,
		indexes: indexes,
	}

	if cacheSize > 0 {
		cache, err := lru.New[cacheKey, []searchdb.Result](cacheSize)
		if err != nil {
			logger.Warn("query cache disabled", "err", err.Error())
		} else {
			service.cache = cache
		}
	}

	return service
}

// IsSearchable reports whether a query is long enough to be run against the index.
func IsSearchable(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinQueryLength
}

// Search returns at most MaxResults matches for query in locale, best first. It never fails:
// short queries and index errors both yield an empty result.
func (s *Service) Search(ctx context.Context, query string, locale string) (results []searchdb.Result) {
	if !IsSearchable(query) {
		metrics.Queries.WithLabelValues(metrics.OutcomeShortQuery).Inc()
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}

	trimmed := strings.TrimSpace(query)
	idx := s.indexes.Current()
	key := cacheKey{version: idx.Version, locale: catalog.CanonicalLocale(locale), query: trimmed}

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.CacheHits.Inc()
			return slices.Clone(cached)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search panicked", "query", trimmed, "err", fmt.Sprint(r))
			metrics.Queries.WithLabelValues(metrics.OutcomeError).Inc()
			results = nil
		}
	}()

	response, err := idx.DB.Search(trimmed, key.locale, MaxResults)
	if err != nil {
		s.logger.Error("search failed", "query", trimmed, "err", err.Error())
		metrics.Queries.WithLabelValues(metrics.OutcomeError).Inc()
		return nil
	}

	results = response.Results
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	if len(results) == 0 {
		metrics.Queries.WithLabelValues(metrics.OutcomeNoResults).Inc()
	} else {
		metrics.Queries.WithLabelValues(metrics.OutcomeResults).Inc()
	}

	if s.cache != nil {
		s.cache.Add(key, slices.Clone(results))
	}

	return results
}
