package searchdb

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/logger"
)

const indexingBatchSize = 100

const (
	indexFieldLocale = "locale"
	indexFieldKind   = "kind"
	// unscopedLocale is indexed for items without a locale so that they match every locale filter.
	unscopedLocale = "*"
)

var quotedPhraseRegex = regexp.MustCompile(`"([^"]*)"`)

// BleveDB is an in-memory bleve index over a catalog. Scores are bleve's relevance mapped
// onto (0,1] as 1/(1+score) so that lower is better, like the fuzzy backend.
type BleveDB struct {
	logger  logger.Logger
	catalog *catalog.Catalog
	index   bleve.Index
}

func NewBleveDB(logger logger.Logger, cat *catalog.Catalog) (*BleveDB, error) {
	index, err := bleve.NewMemOnly(createIndexMapping())
	if err != nil {
		logger.Error("could not create in-memory index", "err", err.Error())
		return nil, fmt.Errorf("could not create in-memory index: %w", err)
	}

	b := &BleveDB{logger: logger, catalog: cat, index: index}
	if err := b.buildIndex(); err != nil {
		index.Close()
		return nil, err
	}

	return b, nil
}

func createIndexMapping() mapping.IndexMapping {

	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	for _, field := range indexedFields {
		fieldMapping := bleve.NewTextFieldMapping()
		fieldMapping.Analyzer = standard.Name
		fieldMapping.Store = false
		fieldMapping.IncludeTermVectors = true
		docMapping.AddFieldMappingsAt(string(field), fieldMapping)
	}

	// Locale and kind are filters, not analyzed
	for _, field := range []string{indexFieldLocale, indexFieldKind} {
		fieldMapping := bleve.NewTextFieldMapping()
		fieldMapping.Analyzer = keyword.Name
		docMapping.AddFieldMappingsAt(field, fieldMapping)
	}

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

func (b *BleveDB) buildIndex() error {

	batch := b.index.NewBatch()

	for i := 0; i < b.catalog.Len(); i++ {
		item := b.catalog.At(i)

		if err := batch.Index(item.ID, toIndexDocument(item)); err != nil {
			b.logger.Error("could not index document", "id", item.ID, "err", err.Error())
			return fmt.Errorf("could not index document %s: %w", item.ID, err)
		}

		// Execute batch when it reaches the batch size
		if (i+1)%indexingBatchSize == 0 {
			if err := b.index.Batch(batch); err != nil {
				return err
			}
			batch = b.index.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := b.index.Batch(batch); err != nil {
			b.logger.Error("could not index documents", "err", err.Error())
			return err
		}
	}

	return nil
}

func toIndexDocument(item *catalog.Item) map[string]any {
	locale := item.Locale
	if locale == "" {
		locale = unscopedLocale
	}

	return map[string]any{
		string(catalog.FieldTitle):    item.Title,
		string(catalog.FieldContent):  item.Content,
		string(catalog.FieldFullText): item.FullText,
		string(catalog.FieldHeadings): item.Headings,
		string(catalog.FieldTags):     item.Tags,
		indexFieldLocale:              locale,
		indexFieldKind:                string(item.Kind),
	}
}

func (b *BleveDB) Search(queryString string, locale string, limit int) (*Response, error) {
	start := time.Now()

	docCount, err := b.index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("could not count documents: %w", err)
	}
	if docCount == 0 {
		return &Response{SearchTime: time.Since(start).String()}, nil
	}

	searchQuery := b.buildSearchQuery(queryString, catalog.CanonicalLocale(locale))

	// Every hit is fetched so that ties can be broken by catalog order before truncating.
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, int(docCount), 0, false)
	searchRequest.IncludeLocations = true

	searchResult, err := b.index.Search(searchRequest)
	if err != nil {
		b.logger.Error("search failed", "err", err.Error())
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]Result, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		item, ok := b.catalog.Get(hit.ID)
		if !ok {
			b.logger.Warn("search hit not in catalog", "id", hit.ID)
			continue
		}
		results = append(results, Result{
			Item:    item,
			Score:   1 / (1 + hit.Score),
			Matches: matchesFromLocations(item, hit.Locations),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return b.catalog.Position(results[i].Item.ID) < b.catalog.Position(results[j].Item.ID)
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

func (b *BleveDB) buildSearchQuery(queryString string, locale string) query.Query {

	const (
		boostScale           = 10.0
		boostForPhraseMatch  = 5.0
		boostForPartialMatch = 1.5
		minFuzzyTermLength   = 4
	)

	queryString = strings.ToLower(strings.TrimSpace(queryString))
	quoted, remaining := parseQuotedQuery(queryString)

	disjunctQuery := bleve.NewDisjunctionQuery()

	for _, field := range indexedFields {
		boost := FieldWeights[field] * boostScale

		if remaining != "" {
			matchQuery := bleve.NewMatchQuery(remaining)
			matchQuery.SetField(string(field))
			matchQuery.SetBoost(boost)
			if utf8.RuneCountInString(remaining) >= minFuzzyTermLength {
				matchQuery.SetFuzziness(1)
			}
			disjunctQuery.AddQuery(matchQuery)
		}

		for _, phrase := range quoted {
			phraseQuery := bleve.NewMatchPhraseQuery(phrase)
			phraseQuery.SetField(string(field))
			phraseQuery.SetBoost(boost * boostForPhraseMatch)
			disjunctQuery.AddQuery(phraseQuery)
		}

		if len(remaining) > 2 && !strings.Contains(remaining, " ") {
			prefixQuery := bleve.NewPrefixQuery(remaining)
			prefixQuery.SetField(string(field))
			prefixQuery.SetBoost(boost * boostForPartialMatch)
			disjunctQuery.AddQuery(prefixQuery)
		}
	}

	if locale == "" {
		return disjunctQuery
	}

	localeQuery := bleve.NewTermQuery(locale)
	localeQuery.SetField(indexFieldLocale)
	unscopedQuery := bleve.NewTermQuery(unscopedLocale)
	unscopedQuery.SetField(indexFieldLocale)

	return bleve.NewConjunctionQuery(disjunctQuery, bleve.NewDisjunctionQuery(localeQuery, unscopedQuery))
}

// parseQuotedQuery splits "quoted phrases" from the remaining free terms.
func parseQuotedQuery(input string) ([]string, string) {
	var quoted []string
	for _, match := range quotedPhraseRegex.FindAllStringSubmatch(input, -1) {
		if phrase := strings.Join(strings.Fields(match[1]), " "); phrase != "" {
			quoted = append(quoted, phrase)
		}
	}

	remaining := quotedPhraseRegex.ReplaceAllString(input, " ")
	return quoted, strings.Join(strings.Fields(remaining), " ")
}

// matchesFromLocations converts bleve's byte-offset term locations into rune spans per field.
// For array fields only the element with the most hits is reported.
func matchesFromLocations(item *catalog.Item, locations search.FieldTermLocationMap) []FieldMatch {
	var matches []FieldMatch

	for _, field := range indexedFields {
		termLocations, ok := locations[string(field)]
		if !ok || len(termLocations) == 0 {
			continue
		}

		byElement := map[int][]*search.Location{}
		for _, locs := range termLocations {
			for _, loc := range locs {
				if loc == nil {
					continue
				}
				element := -1
				if isArrayField(field) && len(loc.ArrayPositions) > 0 {
					element = int(loc.ArrayPositions[0])
				}
				byElement[element] = append(byElement[element], loc)
			}
		}

		element := bestElement(byElement)
		values := fieldValues(item, field)
		textIndex := max(element, 0)
		if textIndex >= len(values) {
			continue
		}

		spans := spansFromLocations(values[textIndex], byElement[element])
		if len(spans) == 0 {
			continue
		}
		matches = append(matches, FieldMatch{Field: field, Element: element, Spans: spans})
	}

	return matches
}

func bestElement(byElement map[int][]*search.Location) int {
	best, bestCount := -1, -1
	for element, locs := range byElement {
		if len(locs) > bestCount || (len(locs) == bestCount && element < best) {
			best, bestCount = element, len(locs)
		}
	}
	return best
}

func spansFromLocations(text string, locations []*search.Location) []Span {
	spans := make([]Span, 0, len(locations))
	for _, loc := range locations {
		if loc.End <= loc.Start || loc.End > uint64(len(text)) {
			continue
		}
		spans = append(spans, Span{
			Start: utf8.RuneCountInString(text[:loc.Start]),
			End:   utf8.RuneCountInString(text[:loc.End]) - 1,
		})
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	merged := spans[:0]
	lastEnd := -1
	for _, span := range spans {
		if span.Start <= lastEnd {
			continue
		}
		merged = append(merged, span)
		lastEnd = span.End
	}

	return merged
}

func (b *BleveDB) DocCount() (uint64, error) {
	return b.index.DocCount()
}

func (b *BleveDB) Close() error {

	if b.index != nil {
		if err := b.index.Close(); err != nil {
			b.logger.Error("could not close search index", "err", err.Error())
			return err
		}
	}
	return nil
}
