package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/meghashyamc/docsearch/markdown"
)

const maxFileSize = 10 * 1024 * 1024 // 10MB limit

var markdownExtensions = []string{".md", ".mdx"}

// FileFetcher reads page content from the markdown sources under Root. A URL maps to
// Root/<path>.md, Root/<path>.mdx or Root/<path>/index.md(x) once URLPrefix is trimmed.
type FileFetcher struct {
	Root      string
	URLPrefix string
}

func NewFileFetcher(root string, urlPrefix string) *FileFetcher {
	return &FileFetcher{Root: root, URLPrefix: urlPrefix}
}

func (f *FileFetcher) Fetch(ctx context.Context, url string) (Content, error) {
	if err := ctx.Err(); err != nil {
		return Content{}, err
	}

	path, err := f.resolve(url)
	if err != nil {
		return Content{}, err
	}

	source, err := readTextFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	_, body, err := markdown.SplitFrontMatter(source)
	if err != nil {
		return Content{}, err
	}

	return Content{
		FullText: markdown.PlainText(body),
		Headings: markdown.Headings(body),
	}, nil
}

func (f *FileFetcher) resolve(url string) (string, error) {
	rel := strings.TrimPrefix(url, f.URLPrefix)
	rel = strings.Trim(filepath.FromSlash(rel), string(filepath.Separator))
	if rel == "" {
		rel = "index"
	}

	root, err := filepath.Abs(f.Root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve docs root: %w", err)
	}
	base := filepath.Join(root, rel)
	if base != root && !strings.HasPrefix(base, root+string(filepath.Separator)) {
		return "", fmt.Errorf("url %s escapes the docs root", url)
	}

	var candidates []string
	for _, ext := range markdownExtensions {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range markdownExtensions {
		candidates = append(candidates, filepath.Join(base, "index"+ext))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no markdown source for %s", url)
}

func readTextFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxFileSize))
	if err != nil {
		return "", err
	}

	return string(content), nil
}
