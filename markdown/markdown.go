// Package markdown extracts searchable text from markdown and MDX page sources.
package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

var (
	yamlFrontMatter = frontmatter.NewFormat(frontMatterDelimiter, frontMatterDelimiter, yaml.Unmarshal)
	// Attribute parsing keeps "{#id}" suffixes out of heading text.
	markdownParser = goldmark.New(goldmark.WithParserOptions(parser.WithAttribute())).Parser()
	strictPolicy   = bluemonday.StrictPolicy()
	mdxStatements  = []string{"import ", "export "}
)

type FrontMatter struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
}

// SplitFrontMatter separates a leading YAML front matter block from the body. The block
// is closed by the first line that is exactly "---". Sources without a closed block return
// a zero FrontMatter and the whole source as body.
func SplitFrontMatter(source string) (FrontMatter, string, error) {
	var frontMatter FrontMatter

	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	body, err := frontmatter.Parse(strings.NewReader(normalized), &frontMatter, yamlFrontMatter)
	if err != nil {
		return FrontMatter{}, normalized, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return frontMatter, trimLeadingBlankLines(string(body)), nil
}

func trimLeadingBlankLines(body string) string {
	for {
		line, rest, found := strings.Cut(body, "\n")
		if strings.TrimSpace(line) != "" {
			return body
		}
		if !found {
			return ""
		}
		body = rest
	}
}

// Headings returns the headings of a markdown body in document order.
func Headings(body string) []string {
	source := []byte(body)
	var headings []string

	walk(source, func(node ast.Node) ast.WalkStatus {
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue
		}
		if title := inlineText(heading, source); title != "" {
			headings = append(headings, title)
		}
		return ast.WalkSkipChildren
	})

	return headings
}

// Title returns the first level-one heading of a body, if any.
func Title(body string) string {
	source := []byte(body)
	title := ""

	walk(source, func(node ast.Node) ast.WalkStatus {
		if title != "" {
			return ast.WalkStop
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue
		}
		if heading.Level == 1 {
			title = inlineText(heading, source)
		}
		return ast.WalkSkipChildren
	})

	return title
}

// PlainText flattens a markdown body to whitespace-normalized text. Code blocks keep their
// contents; MDX import/export statements, link targets and HTML tags are dropped.
func PlainText(body string) string {
	source := []byte(body)
	var builder strings.Builder

	walk(source, func(node ast.Node) ast.WalkStatus {
		switch node := node.(type) {
		case *ast.Paragraph:
			if isMDXStatement(node, source) {
				return ast.WalkSkipChildren
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			builder.WriteString(" ")
			builder.Write(blockLines(node, source))
			return ast.WalkSkipChildren
		case *ast.HTMLBlock:
			builder.WriteString(" ")
			builder.WriteString(strictPolicy.Sanitize(string(blockLines(node, source))))
			return ast.WalkSkipChildren
		}
		if node.Type() == ast.TypeBlock {
			builder.WriteString(" ")
			return ast.WalkContinue
		}
		collectInline(&builder, node, source)
		return ast.WalkSkipChildren
	})

	return normalizeSpace(html.UnescapeString(builder.String()))
}

// walk visits every node of the parsed body on entry.
func walk(source []byte, visit func(node ast.Node) ast.WalkStatus) {
	document := markdownParser.Parse(text.NewReader(source))
	_ = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		return visit(node), nil
	})
}

// inlineText collects the visible text of an inline subtree. Raw HTML is skipped and links
// contribute their label only.
func inlineText(node ast.Node, source []byte) string {
	var builder strings.Builder
	collectInline(&builder, node, source)
	return normalizeSpace(builder.String())
}

func collectInline(builder *strings.Builder, node ast.Node, source []byte) {
	switch node := node.(type) {
	case *ast.Text:
		builder.Write(node.Value(source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			builder.WriteString(" ")
		}
		return
	case *ast.String:
		builder.Write(node.Value)
		return
	case *ast.AutoLink:
		builder.Write(node.Label(source))
		return
	case *ast.RawHTML:
		return
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		collectInline(builder, child, source)
	}
}

func blockLines(node ast.Node, source []byte) []byte {
	return node.Lines().Value(source)
}

func isMDXStatement(paragraph *ast.Paragraph, source []byte) bool {
	lines := paragraph.Lines()
	if lines.Len() == 0 {
		return false
	}
	first := lines.At(0)
	line := string(first.Value(source))
	for _, prefix := range mdxStatements {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func normalizeSpace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
