package content

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPFetcher reads the rendered page from a running site and extracts the article body.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (h *HTTPFetcher) Fetch(ctx context.Context, url string) (Content, error) {
	if !strings.HasPrefix(url, "/") || strings.HasPrefix(url, "//") {
		return Content{}, fmt.Errorf("failed to fetch %s: not an in-app route", url)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+url, nil)
	if err != nil {
		return Content{}, fmt.Errorf("failed to create request: %w", err)
	}

	response, err := h.Client.Do(request)
	if err != nil {
		return Content{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return Content{}, fmt.Errorf("failed to fetch %s: unexpected status %d", url, response.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return Content{}, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	return extractPage(doc), nil
}

func extractPage(doc *goquery.Document) Content {
	doc.Find("script, style, noscript, nav, footer, aside").Remove()

	body := doc.Find("article").First()
	if body.Length() == 0 {
		body = doc.Find("main").First()
	}
	if body.Length() == 0 {
		body = doc.Find("body")
	}

	var headings []string
	body.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		// Drop the "#" permalink anchors the site generator appends to headings
		s.Find("a.hash-link").Remove()
		if heading := normalizeWhitespace(s.Text()); heading != "" {
			headings = append(headings, heading)
		}
	})

	return Content{
		FullText: normalizeWhitespace(body.Text()),
		Headings: headings,
	}
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
