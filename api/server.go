package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/config"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/services/index"
	"github.com/meghashyamc/docsearch/services/search"
	"github.com/meghashyamc/docsearch/services/sources"
	"github.com/meghashyamc/docsearch/validation"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	cfg          *config.Config
	router       *gin.Engine
	httpServer   *http.Server
	indexService *index.Service
	search       *search.Service
	closeFetcher func() error
	validator    *validation.Validator
	logger       logger.Logger
}

// Run serves the search API until ctx is cancelled or the process is interrupted. The
// first index build starts immediately; queries answer with no results until it lands.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	s := &server{
		cfg:    cfg,
		logger: logger.New(cfg.GetLogLevel()),
	}
	if err := s.setupDependencies(ctx); err != nil {
		return err
	}
	defer s.closeFetcher()

	if err := s.startBuild(); err != nil {
		return err
	}

	s.setupRouter()
	return s.serve(ctx)
}

func (s *server) setupDependencies(ctx context.Context) error {
	fetcher, closeFetcher, err := sources.NewFetcher(s.logger, s.cfg)
	if err != nil {
		s.logger.Error("error creating content fetcher", "err", err.Error())
		return err
	}
	s.closeFetcher = closeFetcher

	builder := index.NewBuilder(s.logger, fetcher, s.cfg.GetFetchConcurrency())
	s.indexService = index.New(ctx, s.logger, builder, s.cfg.GetSearchBackend())
	s.search = search.New(s.logger, s.indexService, s.cfg.GetCacheSize())

	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		closeFetcher()
		return err
	}

	return nil

}

func (s *server) discover() ([]catalog.Item, error) {
	return sources.Discover(s.logger, s.cfg)
}

func (s *server) startBuild() error {
	discovered, err := s.discover()
	if err != nil {
		s.logger.Warn("catalog discovery failed, using static fallback", "err", err.Error())
	}

	return s.indexService.Build(catalog.StaticFallback(), discovered)
}

func (s *server) setupRouter() {
	router := newRouter()

	router.Use(loggingMiddleware(s.logger))

	setupRoutes(router, routeDependencies{
		logger:        s.logger,
		searcher:      s.search,
		indexes:       s.indexService,
		discover:      s.discover,
		validator:     s.validator,
		defaultLocale: s.cfg.GetDefaultLocale(),
	})

	s.router = router
}

func (s *server) serve(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.GetPort()),
		Handler: s.router.Handler(),
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err := <-errC:
		if err != nil {
			s.logger.Error("http server failed", "err", err.Error())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("starting to shut down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("error shutting down http server", "err", err)
		return err
	}
	if err := s.indexService.Current().DB.Close(); err != nil {
		s.logger.Warn("error closing index", "err", err.Error())
	}
	s.logger.Info("shut down http server successfully")
	return nil
}
