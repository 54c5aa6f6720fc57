package presenter

import (
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
)

// View is a result ready for display.
type View struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Kind      string   `json:"kind"`
	KindLabel string   `json:"kind_label"`
	Tags      []string `json:"tags,omitempty"`
	Score     float64  `json:"score"`
}

func Render(result searchdb.Result, locale string, marker Marker) View {
	item := result.Item
	excerpt := Snippet(result).Truncate()

	return View{
		ID:        item.ID,
		URL:       item.URL,
		Title:     Highlight(item.Title, result.Spans(catalog.FieldTitle), marker),
		Excerpt:   Highlight(excerpt.Text, excerpt.Spans, marker),
		Kind:      string(item.Kind),
		KindLabel: item.Kind.Label(locale),
		Tags:      item.Tags,
		Score:     result.Score,
	}
}

func RenderAll(results []searchdb.Result, locale string, marker Marker) []View {
	views := make([]View, len(results))
	for i, result := range results {
		views[i] = Render(result, locale, marker)
	}
	return views
}
