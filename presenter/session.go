package presenter

import (
	"context"
	"strings"

	"github.com/meghashyamc/docsearch/db/searchdb"
	"github.com/meghashyamc/docsearch/services/search"
)

// NoSelection is the selection index when no result is selected.
const NoSelection = -1

type State string

const (
	StateClosed    State = "closed"
	StateEmpty     State = "empty"
	StateTyping    State = "typing"
	StateResults   State = "results"
	StateNoResults State = "no_results"
)

type Searcher interface {
	Search(ctx context.Context, query string, locale string) []searchdb.Result
}

// Session is the interaction state of one search UI. It is not safe for concurrent use;
// one UI owns one session.
type Session struct {
	searcher Searcher
	locale   string
	open     bool
	query    string
	results  []searchdb.Result
	selected int
}

func NewSession(searcher Searcher, locale string) *Session {
	return &Session{
		searcher: searcher,
		locale:   locale,
		selected: NoSelection,
	}
}

func (s *Session) Open() {
	s.open = true
	s.reset()
}

// Close discards the query, results and selection.
func (s *Session) Close() {
	s.open = false
	s.reset()
}

// Clear empties the query but keeps the UI open.
func (s *Session) Clear() {
	if !s.open {
		return
	}
	s.reset()
}

func (s *Session) reset() {
	s.query = ""
	s.results = nil
	s.selected = NoSelection
}

// SetQuery replaces the query and recomputes results. The selection is always reset.
func (s *Session) SetQuery(ctx context.Context, query string) {
	if !s.open {
		return
	}

	s.query = query
	s.results = s.searcher.Search(ctx, query, s.locale)
	s.selected = NoSelection
}

// Next moves the selection down, stopping at the last result.
func (s *Session) Next() {
	if s.open && s.selected < len(s.results)-1 {
		s.selected++
	}
}

// Previous moves the selection up, stopping at NoSelection.
func (s *Session) Previous() {
	if s.open && s.selected > NoSelection {
		s.selected--
	}
}

// Select points the selection at index, e.g. on hover. Out of range indexes are ignored.
func (s *Session) Select(index int) {
	if s.open && index >= NoSelection && index < len(s.results) {
		s.selected = index
	}
}

// Confirm returns the URL of the selected result and closes the session. Without a
// selection it does nothing and reports false.
func (s *Session) Confirm() (string, bool) {
	if !s.open || s.selected < 0 || s.selected >= len(s.results) {
		return "", false
	}

	url := s.results[s.selected].Item.URL
	s.Close()
	return url, true
}

func (s *Session) State() State {
	switch {
	case !s.open:
		return StateClosed
	case strings.TrimSpace(s.query) == "":
		return StateEmpty
	case !search.IsSearchable(s.query):
		return StateTyping
	case len(s.results) > 0:
		return StateResults
	default:
		return StateNoResults
	}
}

func (s *Session) IsOpen() bool {
	return s.open
}

func (s *Session) Query() string {
	return s.query
}

func (s *Session) Selected() int {
	return s.selected
}

func (s *Session) Results() []searchdb.Result {
	return s.results
}

func (s *Session) Locale() string {
	return s.locale
}
