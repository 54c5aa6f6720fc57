package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
	"github.com/meghashyamc/docsearch/services/index"
	"github.com/meghashyamc/docsearch/validation"
)

type noResults struct{}

func (noResults) Search(context.Context, string, string) []searchdb.Result {
	return nil
}

type idleIndexes struct{}

func (idleIndexes) Build([]catalog.Item, []catalog.Item) error {
	return index.ErrBuildInProgress
}

func (idleIndexes) Status() index.StatusReport {
	return index.StatusReport{Status: index.StatusIdle}
}

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	testLogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	validator, err := validation.New(testLogger)
	require.NoError(t, err)

	router := newRouter()
	router.Use(loggingMiddleware(testLogger))
	setupRoutes(router, routeDependencies{
		logger:        testLogger,
		searcher:      noResults{},
		indexes:       idleIndexes{},
		discover:      func() ([]catalog.Item, error) { return nil, nil },
		validator:     validator,
		defaultLocale: "en",
	})
	return router
}

func TestRoutes(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "Health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "Metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Search", method: http.MethodGet, path: "/search?query=install", expectedStatus: http.StatusOK},
		{name: "IndexStatus", method: http.MethodGet, path: "/index/status", expectedStatus: http.StatusOK},
		{name: "IndexWhileBuilding", method: http.MethodPost, path: "/index", expectedStatus: http.StatusConflict},
		{name: "Preflight", method: http.MethodOptions, path: "/search", expectedStatus: http.StatusNoContent},
	}

	router := newTestRouter(t)
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			w := httptest.NewRecorder()
			req, err := http.NewRequest(testCase.method, testCase.path, nil)
			assert.NoError(err)

			router.ServeHTTP(w, req)
			assert.Equal(testCase.expectedStatus, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	assert := require.New(t)
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	assert.NoError(err)
	router.ServeHTTP(w, req)

	generated := w.Header().Get(HeaderRequestID)
	_, err = uuid.Parse(generated)
	assert.NoError(err)

	provided := uuid.NewString()
	w = httptest.NewRecorder()
	req, err = http.NewRequest(http.MethodGet, "/health", nil)
	assert.NoError(err)
	req.Header.Set(HeaderRequestID, provided)
	router.ServeHTTP(w, req)
	assert.Equal(provided, w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	req, err = http.NewRequest(http.MethodGet, "/health", nil)
	assert.NoError(err)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	router.ServeHTTP(w, req)
	assert.NotEqual("not-a-uuid", w.Header().Get(HeaderRequestID))
}
