package validation

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Query  string `json:"query" validate:"valid_query"`
	Locale string `json:"locale" validate:"valid_locale"`
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		request       testRequest
		expectedError string
	}{
		{name: "Valid", request: testRequest{Query: "install", Locale: "en"}},
		{name: "EmptyQueryIsAllowed", request: testRequest{Query: ""}},
		{name: "ShortQueryIsAllowed", request: testRequest{Query: "a", Locale: "zh-hans"}},
		{name: "CJKQuery", request: testRequest{Query: strings.Repeat("项", MaxQueryLength), Locale: "zh-Hans"}},
		{name: "QueryTooLong", request: testRequest{Query: strings.Repeat("a", MaxQueryLength+1)}, expectedError: "invalid query"},
		{name: "NullByte", request: testRequest{Query: "in\x00stall"}, expectedError: "invalid query"},
		{name: "InvalidUTF8", request: testRequest{Query: "\xff\xfe"}, expectedError: "invalid query"},
		{name: "InvalidLocale", request: testRequest{Query: "install", Locale: "!!!"}, expectedError: "invalid locale"},
	}

	validator, err := New(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	require.NoError(t, err)

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			err := validator.Validate(testCase.request)
			if testCase.expectedError == "" {
				assert.NoError(err)
				return
			}
			assert.EqualError(err, testCase.expectedError)
		})
	}
}
