// Common test helpers
package searchdb

import (
	"log/slog"
	"os"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/logger"
)

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

const installFullText = "First clone the code, then run npm install to fetch the packages."

var endToEndItems = []catalog.Item{
	{
		ID:       "quickstart",
		Title:    "Quick Start Guide",
		Content:  "Get running in minutes",
		URL:      "/en/docs/quickstart",
		Kind:     catalog.KindDoc,
		Locale:   "en",
		FullText: installFullText,
		Headings: []string{"Clone", "Install Dependencies"},
	},
	{
		ID:       "api",
		Title:    "API Overview",
		Content:  "The REST API at a glance",
		URL:      "/en/docs/api",
		Kind:     catalog.KindDoc,
		Locale:   "en",
		FullText: "The REST API uses JSON over HTTP.",
	},
	{
		ID:      "quickstart-zh",
		Title:   "快速开始指南",
		Content: "几分钟内启动并运行项目",
		URL:     "/docs/quickstart",
		Kind:    catalog.KindDoc,
		Locale:  "zh-Hans",
	},
}

func newEndToEndCatalog() *catalog.Catalog {
	return catalog.New(newTestLogger(), endToEndItems)
}

func substring(text string, span Span) string {
	return string([]rune(text)[span.Start : span.End+1])
}
