package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/presenter"
)

var (
	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("86"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// terminalMarker highlights matches with lipgloss styles. When text is set, plain segments
// are styled on their own since the reset after a match ends any enclosing style.
type terminalMarker struct {
	match lipgloss.Style
	text  *lipgloss.Style
}

func (t terminalMarker) Mark(segment string) string {
	if segment == "" {
		return ""
	}
	return t.match.Render(segment)
}

func (t terminalMarker) Text(segment string) string {
	if segment == "" || t.text == nil {
		return segment
	}
	return t.text.Render(segment)
}

var (
	titleMarker   = terminalMarker{match: matchStyle, text: &titleStyle}
	excerptMarker = terminalMarker{match: matchStyle}
)

func renderTitle(result searchdb.Result) string {
	return presenter.Highlight(result.Item.Title, result.Spans(catalog.FieldTitle), titleMarker)
}

// interactive mode commands, one per input line
var lineKeys = map[string]presenter.Key{
	":down":  {Name: presenter.KeyArrowDown},
	":up":    {Name: presenter.KeyArrowUp},
	":enter": {Name: presenter.KeyEnter},
	":esc":   {Name: presenter.KeyEscape},
	":back":  {Name: presenter.KeyBackspace},
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the documentation from the terminal",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "locale",
				Usage: "Locale to search in (defaults to search.default_locale)",
			},
			&cli.BoolFlag{
				Name:  "interactive",
				Usage: "Read queries and navigation keys from stdin",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log := logger.New(cfg.GetLogLevel())

			locale := c.String("locale")
			if locale == "" {
				locale = cfg.GetDefaultLocale()
			}
			locale = catalog.CanonicalLocale(locale)

			engine, cleanup, err := buildEngine(ctx, log, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			session := presenter.NewSession(engine, locale)
			if c.Bool("interactive") {
				return runInteractive(ctx, session, os.Stdin, os.Stdout)
			}

			session.Open()
			session.SetQuery(ctx, strings.Join(c.Args().Slice(), " "))
			printSession(os.Stdout, session)
			return nil
		},
	}
}

// runInteractive drives a session from line input: a line of text replaces the query, a
// line such as ":down" is a navigation key.
func runInteractive(ctx context.Context, session *presenter.Session, in io.Reader, out io.Writer) error {
	session.HandleKey(ctx, presenter.Key{Name: "k", Ctrl: true})
	fmt.Fprintln(out, mutedStyle.Render("type a query; :up :down :enter :back :esc"))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		if key, ok := lineKeys[strings.TrimSpace(line)]; ok {
			outcome := session.HandleKey(ctx, key)
			if outcome.NavigateTo != "" {
				fmt.Fprintln(out, "open", outcome.NavigateTo)
				return nil
			}
		} else {
			session.Clear()
			for _, r := range line {
				session.HandleKey(ctx, presenter.Key{Name: string(r)})
			}
		}

		if !session.IsOpen() {
			return nil
		}
		printSession(out, session)
	}

	return scanner.Err()
}

func printSession(out io.Writer, session *presenter.Session) {
	switch session.State() {
	case presenter.StateEmpty, presenter.StateClosed:
		return
	case presenter.StateTyping:
		fmt.Fprintln(out, mutedStyle.Render("keep typing..."))
		return
	case presenter.StateNoResults:
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("no results for %q", session.Query())))
		return
	}

	for i, result := range session.Results() {
		view := presenter.Render(result, session.Locale(), excerptMarker)
		prefix := "  "
		if i == session.Selected() {
			prefix = selectedStyle.Render(">") + " "
		}
		fmt.Fprintf(out, "%s%s %s\n", prefix, renderTitle(result), mutedStyle.Render("["+view.KindLabel+"]"))
		fmt.Fprintf(out, "    %s\n", view.Excerpt)
		fmt.Fprintf(out, "    %s\n", mutedStyle.Render(view.URL))
	}
}
