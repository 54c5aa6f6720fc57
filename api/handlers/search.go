package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/presenter"
	"github.com/meghashyamc/docsearch/validation"
)

type Searcher interface {
	Search(ctx context.Context, query string, locale string) []searchdb.Result
}

type SearchRequest struct {
	Query  string `form:"query" json:"query" validate:"valid_query"`
	Locale string `form:"locale" json:"locale" validate:"valid_locale"`
}

type SearchResponse struct {
	Query   string           `json:"query"`
	Locale  string           `json:"locale"`
	Results []presenter.View `json:"results"`
}

func SetupSearch(router *gin.Engine, logger logger.Logger, searcher Searcher, validator *validation.Validator, defaultLocale string) {
	router.GET("/search", handleSearch(searcher, logger, validator, defaultLocale))

}

func handleSearch(searcher Searcher, logger logger.Logger, validator *validation.Validator, defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request query parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		locale := strings.TrimSpace(request.Locale)
		if locale == "" {
			locale = defaultLocale
		}
		locale = catalog.CanonicalLocale(locale)

		results := searcher.Search(c.Request.Context(), request.Query, locale)

		searchResponse := SearchResponse{
			Query:   request.Query,
			Locale:  locale,
			Results: presenter.RenderAll(results, locale, presenter.HTMLMarker{}),
		}

		writeResponse(c, searchResponse, http.StatusOK, nil)
	}
}
