package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meghashyamc/docsearch/api/handlers"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/validation"
)

type routeDependencies struct {
	logger        logger.Logger
	searcher      handlers.Searcher
	indexes       handlers.IndexService
	discover      handlers.Discoverer
	validator     *validation.Validator
	defaultLocale string
}

func setupRoutes(router *gin.Engine, deps routeDependencies) {
	router.GET("/health", health())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.SetupIndex(router, deps.logger, deps.indexes, deps.discover)
	handlers.SetupSearch(router, deps.logger, deps.searcher, deps.validator, deps.defaultLocale)

}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.UseRawPath = true
	router.Use(requestIDMiddleware())
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())

	return router
}
