package searchdb

import (
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/fuzzy"
)

type Span = fuzzy.Span

// FieldMatch records where a query matched inside one field. Element is the position within
// an array field (headings, tags) and -1 for scalar fields.
type FieldMatch struct {
	Field   catalog.Field `json:"field"`
	Element int           `json:"element"`
	Spans   []Span        `json:"spans"`
}

// Result is one ranked match. Score is normalized to [0,1], lower is better.
type Result struct {
	Item    *catalog.Item `json:"item"`
	Score   float64       `json:"score"`
	Matches []FieldMatch  `json:"matches"`
}

// Spans returns the spans of the first match recorded for a field.
func (r Result) Spans(field catalog.Field) []Span {
	for _, match := range r.Matches {
		if match.Field == field {
			return match.Spans
		}
	}
	return nil
}

func (r Result) Matched(field catalog.Field) bool {
	return len(r.Spans(field)) > 0
}

type Response struct {
	Results    []Result `json:"results"`
	Total      uint64   `json:"total"`
	SearchTime string   `json:"search_time"`
}
