package catalog

import (
	"strings"

	"github.com/meghashyamc/docsearch/logger"
)

// Catalog is an ordered, immutable collection of items. Position in the catalog is the
// tie-break order for equally scored results.
type Catalog struct {
	items []*Item
	byID  map[string]int
}

// New validates items and freezes them into a Catalog.
func New(logger logger.Logger, items []Item) *Catalog {
	valid := Validate(logger, items)

	c := &Catalog{
		items: make([]*Item, 0, len(valid)),
		byID:  make(map[string]int, len(valid)),
	}
	for _, item := range valid {
		stored := item
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, &stored)
	}

	return c
}

// Validate drops items with an empty or duplicate ID, a URL that is not an in-app route,
// or a URL already taken in the same locale. The first occurrence wins. Kept items get a
// canonical locale, a known kind and their own copies of the slice fields.
func Validate(logger logger.Logger, items []Item) []Item {
	type route struct {
		locale string
		url    string
	}

	valid := make([]Item, 0, len(items))
	ids := make(map[string]struct{}, len(items))
	routes := make(map[route]struct{}, len(items))

	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			logger.Warn("dropping catalog item without id", "url", item.URL)
			continue
		}
		if _, exists := ids[item.ID]; exists {
			logger.Warn("dropping duplicate catalog item", "id", item.ID, "url", item.URL)
			continue
		}
		if !isAppRoute(item.URL) {
			logger.Warn("dropping catalog item with invalid url", "id", item.ID, "url", item.URL)
			continue
		}

		item.Locale = CanonicalLocale(item.Locale)
		key := route{locale: item.Locale, url: item.URL}
		if _, exists := routes[key]; exists {
			logger.Warn("dropping catalog item with duplicate url", "id", item.ID, "url", item.URL, "locale", item.Locale)
			continue
		}
		if !item.Kind.Valid() {
			item.Kind = KindPage
		}
		item.Tags = append([]string(nil), item.Tags...)
		item.Headings = append([]string(nil), item.Headings...)

		ids[item.ID] = struct{}{}
		routes[key] = struct{}{}
		valid = append(valid, item)
	}

	return valid
}

// isAppRoute accepts rooted paths only; "//host/x" is a network path, not a route.
func isAppRoute(url string) bool {
	return strings.HasPrefix(url, "/") && !strings.HasPrefix(url, "//")
}

func Empty() *Catalog {
	return &Catalog{byID: map[string]int{}}
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at position i. Callers must not modify it.
func (c *Catalog) At(i int) *Item {
	return c.items[i]
}

func (c *Catalog) Get(id string) (*Item, bool) {
	position, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return c.items[position], true
}

// Position returns the insertion position of an item id, or -1.
func (c *Catalog) Position(id string) int {
	position, ok := c.byID[id]
	if !ok {
		return -1
	}
	return position
}

// Locales lists the distinct locales present, in first-seen order.
func (c *Catalog) Locales() []string {
	seen := map[string]struct{}{}
	var locales []string
	for _, item := range c.items {
		if _, ok := seen[item.Locale]; ok {
			continue
		}
		seen[item.Locale] = struct{}{}
		locales = append(locales, item.Locale)
	}
	return locales
}

// Items returns a copy of the item values in catalog order.
func (c *Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	for i, item := range c.items {
		items[i] = *item
	}
	return items
}
