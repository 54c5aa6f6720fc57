package presenter

import (
	"html"
	"sort"

	"github.com/meghashyamc/docsearch/db/searchdb"
)

// Marker renders highlighted and plain segments of a text.
type Marker interface {
	Mark(segment string) string
	Text(segment string) string
}

// HTMLMarker wraps matches in <mark> and escapes everything else.
type HTMLMarker struct{}

func (HTMLMarker) Mark(segment string) string {
	return "<mark>" + html.EscapeString(segment) + "</mark>"
}

func (HTMLMarker) Text(segment string) string {
	return html.EscapeString(segment)
}

// TextMarker surrounds matches with fixed delimiters and leaves the rest untouched.
type TextMarker struct {
	Open  string
	Close string
}

func (t TextMarker) Mark(segment string) string {
	return t.Open + segment + t.Close
}

func (t TextMarker) Text(segment string) string {
	return segment
}

// Highlight marks each span of text. Spans are inclusive rune offsets; a span that falls
// outside the text, is inverted, or overlaps an earlier span is skipped.
func Highlight(text string, spans []searchdb.Span, marker Marker) string {
	runes := []rune(text)
	if len(spans) == 0 {
		return marker.Text(text)
	}

	ordered := make([]searchdb.Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	var highlighted string
	position := 0
	for _, span := range ordered {
		if span.Start < position || span.Start > span.End || span.End >= len(runes) {
			continue
		}
		highlighted += marker.Text(string(runes[position:span.Start]))
		highlighted += marker.Mark(string(runes[span.Start : span.End+1]))
		position = span.End + 1
	}
	highlighted += marker.Text(string(runes[position:]))

	return highlighted
}
