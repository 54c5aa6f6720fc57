// Package fuzzy implements case-insensitive, character-level approximate substring matching.
//
// A pattern matches a text when some substring of the text is within an edit distance of
// threshold*len(pattern) from the pattern. The score is errors/len(pattern): 0 is an exact
// occurrence, and the position of the occurrence inside the text never affects the score.
package fuzzy

import (
	"math"
	"unicode"
)

const (
	DefaultThreshold      = 0.4
	DefaultMinMatchLength = 2
)

// Span is an inclusive range of rune offsets within a field's text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start + 1
}

type Options struct {
	// Threshold rejects matches scoring worse than this value (0 exact, 1 anything).
	Threshold float64
	// MinMatchLength drops spans shorter than this many runes.
	MinMatchLength int
}

type Result struct {
	Matched bool
	Score   float64
	Spans   []Span
}

type Matcher struct {
	opts Options
}

func New(opts Options) *Matcher {
	if opts.Threshold <= 0 || opts.Threshold > 1 {
		opts.Threshold = DefaultThreshold
	}
	if opts.MinMatchLength <= 0 {
		opts.MinMatchLength = DefaultMinMatchLength
	}

	return &Matcher{opts: opts}
}

// Pattern is a compiled query. It is immutable and safe for concurrent use.
type Pattern struct {
	runes     []rune
	maxErrors int
	minLength int
}

func (m *Matcher) Compile(query string) *Pattern {
	runes := lower([]rune(query))
	maxErrors := int(math.Floor(m.opts.Threshold*float64(len(runes)) + 1e-9))
	if maxErrors >= len(runes) {
		maxErrors = len(runes) - 1
	}

	return &Pattern{
		runes:     runes,
		maxErrors: maxErrors,
		minLength: m.opts.MinMatchLength,
	}
}

func (p *Pattern) Len() int {
	return len(p.runes)
}

// Match finds the best approximate occurrences of the pattern in text.
func (p *Pattern) Match(text string) Result {
	pattern := p.runes
	target := lower([]rune(text))
	m, n := len(pattern), len(target)
	if m == 0 || n == 0 {
		return Result{}
	}

	// cost[i] is the fewest edits aligning pattern[:i] with a substring of target ending at
	// the current column; start[i] is where that substring begins.
	prevCost := make([]int, m+1)
	prevStart := make([]int, m+1)
	cost := make([]int, m+1)
	start := make([]int, m+1)
	for i := range prevCost {
		prevCost[i] = i
	}

	endCost := make([]int, n+1)
	endStart := make([]int, n+1)
	endCost[0] = m
	best := m

	for j := 1; j <= n; j++ {
		cost[0], start[0] = 0, j
		for i := 1; i <= m; i++ {
			substitution := prevCost[i-1]
			if pattern[i-1] != target[j-1] {
				substitution++
			}
			c, s := substitution, prevStart[i-1]
			if deletion := cost[i-1] + 1; deletion < c {
				c, s = deletion, start[i-1]
			}
			if insertion := prevCost[i] + 1; insertion < c {
				c, s = insertion, prevStart[i]
			}
			cost[i], start[i] = c, s
		}

		endCost[j], endStart[j] = cost[m], start[m]
		best = min(best, cost[m])

		prevCost, cost = cost, prevCost
		prevStart, start = start, prevStart
	}

	if best > p.maxErrors {
		return Result{}
	}

	var spans []Span
	lastEnd := -1
	for j := 1; j <= n; j++ {
		if endCost[j] != best {
			continue
		}
		span := Span{Start: endStart[j], End: j - 1}
		if span.Start <= lastEnd || span.Start > span.End || span.Len() < p.minLength {
			continue
		}
		spans = append(spans, span)
		lastEnd = span.End
	}

	if len(spans) == 0 {
		return Result{}
	}

	return Result{
		Matched: true,
		Score:   float64(best) / float64(m),
		Spans:   spans,
	}
}

func lower(runes []rune) []rune {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}
	return lowered
}
