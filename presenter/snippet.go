package presenter

import (
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
)

const (
	// SnippetContext is the number of characters kept on each side of a full text match.
	SnippetContext = 50
	// MaxDisplayLength caps the excerpt shown under a result title.
	MaxDisplayLength = 150
	ellipsis         = "..."
)

// Excerpt is display text plus the spans to highlight within it.
type Excerpt struct {
	Text  string
	Spans []searchdb.Span
}

// Snippet cuts a window of full text around the first full text match, with an ellipsis on
// each truncated side. Without a usable full text match it falls back to the item content.
func Snippet(result searchdb.Result) Excerpt {
	item := result.Item
	spans := result.Spans(catalog.FieldFullText)
	if !item.HasFullText() || len(spans) == 0 {
		return Excerpt{Text: item.Content}
	}

	text := []rune(item.FullText)
	first := spans[0]
	if first.Start < 0 || first.Start > first.End || first.End >= len(text) {
		return Excerpt{Text: item.Content}
	}

	windowStart := max(0, first.Start-SnippetContext)
	windowEnd := min(len(text), first.End+1+SnippetContext)

	prefix := ""
	if windowStart > 0 {
		prefix = ellipsis
	}
	suffix := ""
	if windowEnd < len(text) {
		suffix = ellipsis
	}

	shift := len([]rune(prefix)) - windowStart
	var shifted []searchdb.Span
	for _, span := range spans {
		if span.Start < windowStart || span.End >= windowEnd {
			continue
		}
		shifted = append(shifted, searchdb.Span{Start: span.Start + shift, End: span.End + shift})
	}

	return Excerpt{
		Text:  prefix + string(text[windowStart:windowEnd]) + suffix,
		Spans: shifted,
	}
}

// Truncate caps an excerpt at MaxDisplayLength characters, dropping spans past the cut.
func (e Excerpt) Truncate() Excerpt {
	runes := []rune(e.Text)
	if len(runes) <= MaxDisplayLength {
		return e
	}

	var kept []searchdb.Span
	for _, span := range e.Spans {
		if span.End < MaxDisplayLength {
			kept = append(kept, span)
		}
	}
	return Excerpt{Text: string(runes[:MaxDisplayLength]) + ellipsis, Spans: kept}
}
