package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/markdown"
)

// Record is one page or post as exported by the site generator's build metadata.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Permalink   string `json:"permalink"`
	Tags        []Tag  `json:"tags"`
}

type Tag struct {
	Label     string `json:"label"`
	Permalink string `json:"permalink,omitempty"`
}

// Registry is the site-wide metadata export discovered at runtime.
type Registry struct {
	Docs      []Record `json:"docs"`
	BlogPosts []Record `json:"blogPosts"`
	Pages     []Record `json:"pages"`
}

type DiscoverOptions struct {
	// Locales are the non-default locales that prefix permalinks, e.g. "en" for "/en/docs/...".
	Locales       []string
	DefaultLocale string
}

func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	var registry Registry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}

	return &registry, nil
}

// Items converts registry records into catalog items, docs first, then blog posts, then pages.
// The items carry no fetched content yet.
func (r *Registry) Items(opts DiscoverOptions) []Item {
	var items []Item
	for _, group := range []struct {
		records []Record
		kind    Kind
	}{
		{r.Docs, KindDoc},
		{r.BlogPosts, KindBlog},
		{r.Pages, KindPage},
	} {
		for _, record := range group.records {
			items = append(items, record.item(group.kind, opts))
		}
	}

	return items
}

func (r Record) item(kind Kind, opts DiscoverOptions) Item {
	var tags []string
	for _, tag := range r.Tags {
		if tag.Label != "" {
			tags = append(tags, tag.Label)
		}
	}

	return Item{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Description,
		URL:     r.Permalink,
		Kind:    kind,
		Tags:    tags,
		Locale:  LocaleFromURL(r.Permalink, opts.Locales, opts.DefaultLocale),
	}
}

// ScanDocs discovers doc pages from the markdown sources under root. Permalinks are
// urlPrefix joined with the file path (or the front matter slug), without extension.
// A page that cannot be read or parsed is logged and skipped; only an unreadable root fails.
func ScanDocs(logger logger.Logger, root string, urlPrefix string, opts DiscoverOptions) ([]Item, error) {
	var items []Item

	err := filepath.WalkDir(root, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			if filePath == root {
				return err
			}
			logger.Warn("skipping unreadable docs path", "path", filePath, "err", err.Error())
			return nil
		}
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") && filePath != root {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(filePath))
		if ext != ".md" && ext != ".mdx" {
			return nil
		}

		source, err := os.ReadFile(filePath)
		if err != nil {
			logger.Warn("skipping unreadable doc page", "path", filePath, "err", err.Error())
			return nil
		}
		frontMatter, body, err := markdown.SplitFrontMatter(string(source))
		if err != nil {
			logger.Warn("skipping doc page with invalid front matter", "path", filePath, "err", err.Error())
			return nil
		}

		rel, err := filepath.Rel(root, filePath)
		if err != nil {
			return err
		}
		docPath := strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
		docPath = strings.TrimSuffix(docPath, "/index")
		if docPath == "index" {
			docPath = ""
		}

		slug := docPath
		if frontMatter.Slug != "" {
			slug = path.Join(path.Dir(docPath), frontMatter.Slug)
			if strings.HasPrefix(frontMatter.Slug, "/") {
				slug = frontMatter.Slug
			}
		}
		permalink := path.Join("/", urlPrefix, slug)

		id := frontMatter.ID
		if id == "" {
			id = docPath
		}
		if id == "" {
			id = "index"
		}
		title := frontMatter.Title
		if title == "" {
			title = markdown.Title(body)
		}
		if title == "" {
			title = path.Base(docPath)
		}

		items = append(items, Item{
			ID:      id,
			Title:   title,
			Content: frontMatter.Description,
			URL:     permalink,
			Kind:    KindDoc,
			Tags:    frontMatter.Tags,
			Locale:  LocaleFromURL(permalink, opts.Locales, opts.DefaultLocale),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan docs under %s: %w", root, err)
	}

	return items, nil
}
