package searchdb

import (
	"fmt"
	"testing"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/stretchr/testify/require"
)

func TestFuzzySearchEndToEnd(t *testing.T) {
	assert := require.New(t)
	db := NewFuzzyDB(newTestLogger(), newEndToEndCatalog(), FuzzyOptions{})

	response, err := db.Search("install", "en", 10)
	assert.NoError(err)
	assert.Len(response.Results, 1)
	assert.Equal(uint64(1), response.Total)

	result := response.Results[0]
	assert.Equal("quickstart", result.Item.ID)
	assert.GreaterOrEqual(result.Score, 0.0)
	assert.LessOrEqual(result.Score, 1.0)

	spans := result.Spans(catalog.FieldFullText)
	assert.NotEmpty(spans)
	assert.Equal("install", substring(installFullText, spans[0]))

	assert.True(result.Matched(catalog.FieldHeadings))
	for _, match := range result.Matches {
		if match.Field == catalog.FieldHeadings {
			assert.Equal(1, match.Element)
		}
		if match.Field == catalog.FieldFullText {
			assert.Equal(-1, match.Element)
		}
	}

	response, err = db.Search("xyzxyz", "en", 10)
	assert.NoError(err)
	assert.Empty(response.Results)
}

func TestFuzzySearchLocale(t *testing.T) {
	testCases := []struct {
		name        string
		locale      string
		expectedIDs []string
	}{
		{name: "English", locale: "en", expectedIDs: []string{"guide-en", "guide-all"}},
		{name: "Chinese", locale: "zh-hans", expectedIDs: []string{"guide-zh", "guide-all"}},
		{name: "Unfiltered", locale: "", expectedIDs: []string{"guide-zh", "guide-en", "guide-all"}},
		{name: "UnknownLocale", locale: "fr", expectedIDs: []string{"guide-all"}},
	}

	cat := catalog.New(newTestLogger(), []catalog.Item{
		{ID: "guide-zh", Title: "Guide", URL: "/docs/guide", Locale: "zh-Hans"},
		{ID: "guide-en", Title: "Guide", URL: "/en/docs/guide", Locale: "en"},
		{ID: "guide-all", Title: "Guide", URL: "/guide"},
	})
	db := NewFuzzyDB(newTestLogger(), cat, FuzzyOptions{})

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			response, err := db.Search("guide", testCase.locale, 10)
			assert.NoError(err)

			var ids []string
			for _, result := range response.Results {
				ids = append(ids, result.Item.ID)
			}
			assert.Equal(testCase.expectedIDs, ids)
		})
	}
}

func TestFuzzySearchRanking(t *testing.T) {
	assert := require.New(t)
	cat := catalog.New(newTestLogger(), []catalog.Item{
		{ID: "content-match", Title: "Setup", Content: "Read the deployment notes", URL: "/a"},
		{ID: "title-match", Title: "Deployment", URL: "/b"},
		{ID: "title-match-later", Title: "Deployment", URL: "/c"},
		{ID: "typo-match", Title: "Deploymnt", URL: "/d"},
	})
	db := NewFuzzyDB(newTestLogger(), cat, FuzzyOptions{})

	response, err := db.Search("deployment", "", 10)
	assert.NoError(err)

	var ids []string
	for i, result := range response.Results {
		ids = append(ids, result.Item.ID)
		if i > 0 {
			assert.LessOrEqual(response.Results[i-1].Score, result.Score)
		}
	}
	assert.Equal([]string{"title-match", "title-match-later", "content-match", "typo-match"}, ids[:4])
}

func TestFuzzySearchLimit(t *testing.T) {
	assert := require.New(t)
	var items []catalog.Item
	for i := 0; i < 15; i++ {
		items = append(items, catalog.Item{ID: fmt.Sprintf("guide-%d", i), Title: fmt.Sprintf("Guide %d", i), URL: fmt.Sprintf("/guide/%d", i)})
	}
	db := NewFuzzyDB(newTestLogger(), catalog.New(newTestLogger(), items), FuzzyOptions{})

	response, err := db.Search("guide", "", 10)
	assert.NoError(err)
	assert.Len(response.Results, 10)
	assert.Equal(uint64(15), response.Total)
	for i, result := range response.Results {
		assert.Equal(fmt.Sprintf("guide-%d", i), result.Item.ID, "equal scores keep catalog order")
	}

	count, err := db.DocCount()
	assert.NoError(err)
	assert.Equal(uint64(15), count)
}

func TestFuzzySearchSkipsMissingFullText(t *testing.T) {
	assert := require.New(t)
	cat := catalog.New(newTestLogger(), []catalog.Item{
		{ID: "blank", Title: "Intro", FullText: "   ", URL: "/intro"},
	})
	db := NewFuzzyDB(newTestLogger(), cat, FuzzyOptions{})

	response, err := db.Search("intro", "", 10)
	assert.NoError(err)
	assert.Len(response.Results, 1)
	assert.False(response.Results[0].Matched(catalog.FieldFullText))
	assert.True(response.Results[0].Matched(catalog.FieldTitle))
}

func TestNewBackend(t *testing.T) {
	assert := require.New(t)
	cat := newEndToEndCatalog()

	db, err := New(newTestLogger(), BackendFuzzy, cat)
	assert.NoError(err)
	assert.IsType(&FuzzyDB{}, db)

	db, err = New(newTestLogger(), BackendBleve, cat)
	assert.NoError(err)
	assert.IsType(&BleveDB{}, db)
	assert.NoError(db.Close())

	_, err = New(newTestLogger(), "sqlite", cat)
	assert.Error(err)
}
