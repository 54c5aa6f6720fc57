package searchdb

import (
	"math"
	"sort"
	"time"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/fuzzy"
	"github.com/meghashyamc/docsearch/logger"
)

// epsilon stands in for a perfect field score so that weights still order exact matches.
var epsilon = math.Nextafter(1, 2) - 1

type FuzzyOptions struct {
	Threshold      float64
	MinMatchLength int
	Weights        map[catalog.Field]float64
}

// FuzzyDB scans the catalog with the character-level fuzzy matcher. A query may match any
// field independently; an item's score is the product of max(fieldScore, epsilon)^weight
// over its matched fields.
type FuzzyDB struct {
	logger  logger.Logger
	catalog *catalog.Catalog
	matcher *fuzzy.Matcher
	weights map[catalog.Field]float64
}

func NewFuzzyDB(logger logger.Logger, cat *catalog.Catalog, opts FuzzyOptions) *FuzzyDB {
	weights := opts.Weights
	if len(weights) == 0 {
		weights = FieldWeights
	}

	return &FuzzyDB{
		logger:  logger,
		catalog: cat,
		matcher: fuzzy.New(fuzzy.Options{Threshold: opts.Threshold, MinMatchLength: opts.MinMatchLength}),
		weights: weights,
	}
}

func (f *FuzzyDB) Search(query string, locale string, limit int) (*Response, error) {
	start := time.Now()
	pattern := f.matcher.Compile(query)
	locale = catalog.CanonicalLocale(locale)

	var results []Result
	for i := 0; i < f.catalog.Len(); i++ {
		item := f.catalog.At(i)
		if !inLocale(item, locale) {
			continue
		}
		if result, ok := f.scoreItem(pattern, item); ok {
			results = append(results, result)
		}
	}

	// Catalog order is the tie-break, so the sort must be stable.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score < results[b].Score
	})

	total := uint64(len(results))
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return &Response{
		Results:    results,
		Total:      total,
		SearchTime: time.Since(start).String(),
	}, nil
}

func (f *FuzzyDB) scoreItem(pattern *fuzzy.Pattern, item *catalog.Item) (Result, bool) {
	result := Result{Item: item, Score: 1}

	for _, field := range indexedFields {
		values := fieldValues(item, field)
		bestElement, best := -1, fuzzy.Result{}
		for element, value := range values {
			match := pattern.Match(value)
			if match.Matched && (!best.Matched || match.Score < best.Score) {
				bestElement, best = element, match
			}
		}
		if !best.Matched {
			continue
		}

		if !isArrayField(field) {
			bestElement = -1
		}
		result.Matches = append(result.Matches, FieldMatch{Field: field, Element: bestElement, Spans: best.Spans})
		result.Score *= math.Pow(math.Max(best.Score, epsilon), f.weights[field])
	}

	return result, len(result.Matches) > 0
}

func (f *FuzzyDB) DocCount() (uint64, error) {
	return uint64(f.catalog.Len()), nil
}

func (f *FuzzyDB) Close() error {
	return nil
}

// fieldValues returns the texts of a field; an item without full text has no fullText value.
func fieldValues(item *catalog.Item, field catalog.Field) []string {
	switch field {
	case catalog.FieldTitle:
		return []string{item.Title}
	case catalog.FieldContent:
		return []string{item.Content}
	case catalog.FieldFullText:
		if !item.HasFullText() {
			return nil
		}
		return []string{item.FullText}
	case catalog.FieldHeadings:
		return item.Headings
	case catalog.FieldTags:
		return item.Tags
	}
	return nil
}

func isArrayField(field catalog.Field) bool {
	return field == catalog.FieldHeadings || field == catalog.FieldTags
}
