package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var matchTestCases = []struct {
	name            string
	opts            Options
	query           string
	text            string
	expectedMatched bool
	expectedScore   float64
	expectedSpans   []Span
}{
	{
		name:            "Exact substring",
		query:           "install",
		text:            "Run npm install now",
		expectedMatched: true,
		expectedScore:   0,
		expectedSpans:   []Span{{Start: 8, End: 14}},
	},
	{
		name:            "Case insensitive",
		query:           "INSTALL",
		text:            "Run npm install now",
		expectedMatched: true,
		expectedScore:   0,
		expectedSpans:   []Span{{Start: 8, End: 14}},
	},
	{
		name:            "Transposed letters",
		query:           "isntall",
		text:            "install",
		expectedMatched: true,
		expectedScore:   2.0 / 7.0,
		expectedSpans:   []Span{{Start: 0, End: 6}},
	},
	{
		name:            "Repeated occurrences do not overlap",
		query:           "aa",
		text:            "aaaa",
		expectedMatched: true,
		expectedScore:   0,
		expectedSpans:   []Span{{Start: 0, End: 1}, {Start: 2, End: 3}},
	},
	{
		name:            "CJK offsets are in characters",
		query:           "项目",
		text:            "欢迎来到项目！",
		expectedMatched: true,
		expectedScore:   0,
		expectedSpans:   []Span{{Start: 4, End: 5}},
	},
	{
		name:            "Location does not affect score",
		query:           "guide",
		text:            "This is a very long sentence that eventually mentions the guide",
		expectedMatched: true,
		expectedScore:   0,
		expectedSpans:   []Span{{Start: 58, End: 62}},
	},
	{
		name:            "Too many errors",
		query:           "qwerty",
		text:            "install",
		expectedMatched: false,
	},
	{
		name:            "Span shorter than minimum length",
		opts:            Options{MinMatchLength: 3},
		query:           "ab",
		text:            "--ab--",
		expectedMatched: false,
	},
	{
		name:            "Empty query",
		query:           "",
		text:            "install",
		expectedMatched: false,
	},
	{
		name:            "Empty text",
		query:           "install",
		text:            "",
		expectedMatched: false,
	},
}

func TestMatch(t *testing.T) {
	for _, testCase := range matchTestCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			result := New(testCase.opts).Compile(testCase.query).Match(testCase.text)

			assert.Equal(testCase.expectedMatched, result.Matched)
			if !testCase.expectedMatched {
				assert.Empty(result.Spans)
				return
			}
			assert.InDelta(testCase.expectedScore, result.Score, 1e-9)
			assert.Equal(testCase.expectedSpans, result.Spans)
		})
	}
}

func TestMatchScoreWithinThreshold(t *testing.T) {
	assert := require.New(t)
	pattern := New(Options{}).Compile("configuration")

	for _, text := range []string{"configuration", "Configuraton", "configure the app", "konfiguration"} {
		result := pattern.Match(text)
		if !result.Matched {
			continue
		}
		assert.GreaterOrEqual(result.Score, 0.0)
		assert.LessOrEqual(result.Score, DefaultThreshold, text)
		for _, span := range result.Spans {
			assert.GreaterOrEqual(span.Len(), DefaultMinMatchLength)
			assert.Less(span.End, len([]rune(text)))
		}
	}
}

func TestCompileDefaults(t *testing.T) {
	assert := require.New(t)
	matcher := New(Options{Threshold: -1})

	assert.Equal(DefaultThreshold, matcher.opts.Threshold)
	assert.Equal(DefaultMinMatchLength, matcher.opts.MinMatchLength)
	assert.Equal(2, matcher.Compile("项目").Len())
	assert.Equal(2, matcher.Compile("install").maxErrors)
}
