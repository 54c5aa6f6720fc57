package index

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/meghashyamc/docsearch/catalog"
	"github.com/meghashyamc/docsearch/db/searchdb"
	"github.com/meghashyamc/docsearch/logger"
	"github.com/meghashyamc/docsearch/metrics"
)

var ErrBuildInProgress = errors.New("indexing already in progress")

const maxIndexBuildingTime = 10 * time.Minute

type Status string

const (
	StatusIdle     Status = "idle"
	StatusBuilding Status = "building"
	StatusReady    Status = "ready"
	StatusFailed   Status = "failed"
)

// Index is an installed, immutable index. Version increases with every install.
type Index struct {
	DB      searchdb.DB
	Catalog *catalog.Catalog
	Stats   BuildStats
	Version uint64
}

type StatusReport struct {
	Status  Status     `json:"status"`
	Version uint64     `json:"version"`
	Stats   BuildStats `json:"stats"`
	Error   string     `json:"error,omitempty"`
}

type Service struct {
	logger      logger.Logger
	builder     *Builder
	backend     string
	buildIndexC chan buildRequest
	building    atomic.Bool
	current     atomic.Pointer[Index]

	statusMu sync.RWMutex
	status   StatusReport

	firstBuild     chan struct{}
	firstBuildOnce sync.Once
}

type buildRequest struct {
	static     []catalog.Item
	discovered []catalog.Item
}

func New(ctx context.Context, logger logger.Logger, builder *Builder, backend string) *Service {
	indexService := &Service{
		logger:      logger,
		builder:     builder,
		backend:     backend,
		buildIndexC: make(chan buildRequest, 1),
		status:      StatusReport{Status: StatusIdle},
		firstBuild:  make(chan struct{}),
	}
	indexService.current.Store(emptyIndex(logger))

	go indexService.build(ctx)
	return indexService
}

func emptyIndex(logger logger.Logger) *Index {
	cat := catalog.Empty()
	return &Index{
		DB:      searchdb.NewFuzzyDB(logger, cat, searchdb.FuzzyOptions{}),
		Catalog: cat,
	}
}

// Build queues an index build in the background. Until it completes, queries run against
// the previously installed index, which is empty before the first build.
func (s *Service) Build(static []catalog.Item, discovered []catalog.Item) error {
	if !s.building.CompareAndSwap(false, true) {
		s.logger.Warn("request to index while indexing is already in progress")
		return ErrBuildInProgress
	}

	s.setStatus(func(report *StatusReport) {
		report.Status = StatusBuilding
		report.Error = ""
	})
	s.buildIndexC <- buildRequest{static: static, discovered: discovered}
	return nil
}

// Current returns the installed index. It is never nil.
func (s *Service) Current() *Index {
	return s.current.Load()
}

func (s *Service) Status() StatusReport {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// WaitForFirstBuild blocks until the first build attempt has finished or ctx is done.
func (s *Service) WaitForFirstBuild(ctx context.Context) error {
	select {
	case <-s.firstBuild:
		if status := s.Status(); status.Status == StatusFailed {
			return errors.New(status.Error)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) build(ctx context.Context) {

	for {
		select {
		case req := <-s.buildIndexC:
			s.buildIndex(ctx, req)
			s.building.Store(false)
			s.firstBuildOnce.Do(func() { close(s.firstBuild) })
		case <-ctx.Done():
			s.logger.Info("index service stopped", "reason", ctx.Err())
			return
		}
	}
}

func (s *Service) buildIndex(ctx context.Context, req buildRequest) {
	buildCtx, cancel := context.WithTimeout(ctx, maxIndexBuildingTime)
	defer cancel()

	s.logger.Info("building index...", "backend", s.backend)
	cat, stats := s.builder.Build(buildCtx, req.static, req.discovered)

	db, err := searchdb.New(s.logger, s.backend, cat)
	if err != nil {
		s.logger.Error("failed to create index", "backend", s.backend, "err", err.Error())
		s.setStatus(func(report *StatusReport) {
			report.Status = StatusFailed
			report.Stats = stats
			report.Error = err.Error()
		})
		return
	}

	previous := s.current.Load()
	installed := &Index{
		DB:      db,
		Catalog: cat,
		Stats:   stats,
		Version: previous.Version + 1,
	}
	s.current.Store(installed)

	// Queries still holding the previous index degrade to no results once it is closed.
	if err := previous.DB.Close(); err != nil {
		s.logger.Warn("failed to close previous index", "err", err.Error())
	}

	metrics.IndexedItems.Set(float64(cat.Len()))
	metrics.BuildDuration.Observe(stats.Duration.Seconds())

	s.setStatus(func(report *StatusReport) {
		report.Status = StatusReady
		report.Version = installed.Version
		report.Stats = stats
		report.Error = ""
	})
	s.logger.Info("index installed", "version", installed.Version, "items", cat.Len())
}

func (s *Service) setStatus(update func(report *StatusReport)) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	update(&s.status)
}
