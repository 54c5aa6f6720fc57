package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/services/index"
)

type IndexService interface {
	Build(static []catalog.Item, discovered []catalog.Item) error
	Status() index.StatusReport
}

// Discoverer returns the current discovered catalog.
type Discoverer func() ([]catalog.Item, error)

func SetupIndex(router *gin.Engine, logger logger.Logger, service IndexService, discover Discoverer) {
	router.POST("/index", handleIndex(service, logger, discover))
	router.GET("/index/status", handleIndexStatus(service))

}

func handleIndex(service IndexService, logger logger.Logger, discover Discoverer) gin.HandlerFunc {
	return func(c *gin.Context) {
		discovered, err := discover()
		if err != nil {
			logger.Warn("could not discover catalog", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		if err := service.Build(catalog.StaticFallback(), discovered); err != nil {
			if errors.Is(err, index.ErrBuildInProgress) {
				c.Abort()
				writeResponse(c, nil, http.StatusConflict, []string{err.Error()})
				return
			}
			logger.Warn("could not start index build", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, nil, http.StatusAccepted, nil)
	}
}

func handleIndexStatus(service IndexService) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeResponse(c, service.Status(), http.StatusOK, nil)
	}
}
