package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testRegistry = `{
  "docs": [
    {"id": "intro", "title": "Welcome", "description": "Start here", "permalink": "/docs/intro", "tags": [{"label": "basics", "permalink": "/docs/tags/basics"}]},
    {"id": "intro-en", "title": "Welcome", "description": "Start here", "permalink": "/en/docs/intro"}
  ],
  "blogPosts": [
    {"id": "release", "title": "Release notes", "description": "What changed", "permalink": "/blog/release"}
  ],
  "pages": [
    {"id": "about", "title": "About", "permalink": "/about"}
  ]
}`

var testDiscoverOptions = DiscoverOptions{Locales: []string{"en"}, DefaultLocale: "zh-Hans"}

func TestRegistryItems(t *testing.T) {
	assert := require.New(t)
	registryPath := filepath.Join(t.TempDir(), "registry.json")
	assert.NoError(os.WriteFile(registryPath, []byte(testRegistry), 0644))

	registry, err := LoadRegistry(registryPath)
	assert.NoError(err)

	items := registry.Items(testDiscoverOptions)
	assert.Len(items, 4)

	assert.Equal(Item{
		ID:      "intro",
		Title:   "Welcome",
		Content: "Start here",
		URL:     "/docs/intro",
		Kind:    KindDoc,
		Tags:    []string{"basics"},
		Locale:  "zh-Hans",
	}, items[0])
	assert.Equal("en", items[1].Locale)
	assert.Equal(KindBlog, items[2].Kind)
	assert.Equal(KindPage, items[3].Kind)
}

func TestLoadRegistryErrors(t *testing.T) {
	assert := require.New(t)
	dir := t.TempDir()

	_, err := LoadRegistry(filepath.Join(dir, "missing.json"))
	assert.Error(err)

	brokenPath := filepath.Join(dir, "broken.json")
	assert.NoError(os.WriteFile(brokenPath, []byte("{"), 0644))
	_, err = LoadRegistry(brokenPath)
	assert.Error(err)
}

func TestScanDocs(t *testing.T) {
	assert := require.New(t)
	root := t.TempDir()

	files := map[string]string{
		"intro.md":                        "---\nid: intro\ntitle: Welcome\ndescription: Start here\ntags: [basics]\n---\n\nBody",
		"getting-started/installation.md": "# Installation Guide\n\nSteps",
		"api/overview.mdx":                "---\nslug: /reference\n---\n\n# API Overview",
		"getting-started/index.md":        "Overview without heading",
		".hidden/secret.md":               "# Secret",
		"notes.txt":                       "not markdown",
	}
	for relPath, content := range files {
		fullPath := filepath.Join(root, relPath)
		assert.NoError(os.MkdirAll(filepath.Dir(fullPath), 0755))
		assert.NoError(os.WriteFile(fullPath, []byte(content), 0644))
	}

	items, err := ScanDocs(newTestLogger(), root, "/docs", testDiscoverOptions)
	assert.NoError(err)

	byID := map[string]Item{}
	for _, item := range items {
		byID[item.ID] = item
	}
	assert.Len(byID, 4)

	assert.Equal("/docs/intro", byID["intro"].URL)
	assert.Equal("Welcome", byID["intro"].Title)
	assert.Equal("Start here", byID["intro"].Content)
	assert.Equal([]string{"basics"}, byID["intro"].Tags)
	assert.Equal("zh-Hans", byID["intro"].Locale)

	assert.Equal("Installation Guide", byID["getting-started/installation"].Title)
	assert.Equal("/docs/getting-started/installation", byID["getting-started/installation"].URL)

	assert.Equal("/docs/reference", byID["api/overview"].URL)
	assert.Equal("API Overview", byID["api/overview"].Title)

	assert.Equal("/docs/getting-started", byID["getting-started"].URL)
	assert.Equal("getting-started", byID["getting-started"].Title)
}

func TestScanDocsMissingRoot(t *testing.T) {
	_, err := ScanDocs(newTestLogger(), filepath.Join(t.TempDir(), "missing"), "/docs", testDiscoverOptions)
	require.Error(t, err)
}

func TestScanDocsSkipsBadPages(t *testing.T) {
	assert := require.New(t)
	root := t.TempDir()

	files := map[string]string{
		"good.md":        "---\nid: good\n---\n\n# Good page",
		"empty-fm.md":    "---\n---\n\n# Empty front matter",
		"broken-yaml.md": "---\nid: [broken\n---\n\n# Broken",
	}
	for relPath, content := range files {
		assert.NoError(os.WriteFile(filepath.Join(root, relPath), []byte(content), 0644))
	}

	items, err := ScanDocs(newTestLogger(), root, "/docs", testDiscoverOptions)
	assert.NoError(err)

	titles := map[string]string{}
	for _, item := range items {
		titles[item.ID] = item.Title
	}
	assert.Equal(map[string]string{"good": "Good page", "empty-fm": "Empty front matter"}, titles)
}
