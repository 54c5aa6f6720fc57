package searchdb

import (
	"fmt"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/logger"
)

const (
	BackendFuzzy = "fuzzy"
	BackendBleve = "bleve"
)

// DB is a queryable index over an immutable catalog.
type DB interface {
	// Search returns matches for query among items of locale (every locale when empty),
	// best first, at most limit of them when limit > 0.
	Search(query string, locale string, limit int) (*Response, error)
	DocCount() (uint64, error)
	Close() error
}

// FieldWeights express each field's relative contribution to the ranking score.
var FieldWeights = map[catalog.Field]float64{
	catalog.FieldTitle:    0.4,
	catalog.FieldFullText: 0.3,
	catalog.FieldHeadings: 0.2,
	catalog.FieldContent:  0.1,
	catalog.FieldTags:     0.1,
}

// indexedFields fixes the order fields are matched and reported in.
var indexedFields = []catalog.Field{
	catalog.FieldTitle,
	catalog.FieldFullText,
	catalog.FieldHeadings,
	catalog.FieldContent,
	catalog.FieldTags,
}

// New builds the index backend named by backend over cat.
func New(logger logger.Logger, backend string, cat *catalog.Catalog) (DB, error) {
	switch backend {
	case "", BackendFuzzy:
		return NewFuzzyDB(logger, cat, FuzzyOptions{}), nil
	case BackendBleve:
		return NewBleveDB(logger, cat)
	default:
		return nil, fmt.Errorf("unknown search backend %q", backend)
	}
}

func inLocale(item *catalog.Item, locale string) bool {
	return locale == "" || item.Locale == "" || item.Locale == locale
}
