package catalog

import "strings"

type Kind string

const (
	KindDoc  Kind = "doc"
	KindBlog Kind = "blog"
	KindPage Kind = "page"
)

// Field names an indexable part of an Item.
type Field string

const (
	FieldTitle    Field = "title"
	FieldContent  Field = "content"
	FieldFullText Field = "fullText"
	FieldHeadings Field = "headings"
	FieldTags     Field = "tags"
)

// Item is one indexable page or post. Items are shared read-only once a Catalog is built.
type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	URL      string   `json:"url"`
	Kind     Kind     `json:"kind"`
	Tags     []string `json:"tags,omitempty"`
	Locale   string   `json:"locale,omitempty"`
	FullText string   `json:"full_text,omitempty"`
	Headings []string `json:"headings,omitempty"`
}

func (i *Item) HasFullText() bool {
	return strings.TrimSpace(i.FullText) != ""
}

// Label returns the display label for a kind in the given locale.
func (k Kind) Label(locale string) string {
	chinese := strings.HasPrefix(strings.ToLower(locale), "zh")
	switch k {
	case KindDoc:
		if chinese {
			return "文档"
		}
		return "Doc"
	case KindBlog:
		if chinese {
			return "博客"
		}
		return "Blog"
	case KindPage:
		if chinese {
			return "页面"
		}
		return "Page"
	default:
		return string(k)
	}
}

func (k Kind) Valid() bool {
	switch k {
	case KindDoc, KindBlog, KindPage:
		return true
	}
	return false
}
