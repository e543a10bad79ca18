package usecase

import (
	"sync"
	"time"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
)

// Config - Cấu hình UseCase
type Config struct {
	DefaultLimit int // page size when the request has none (default 20)
	MaxLimit     int // largest accepted page size (default 50)

	// LookupTimeout bounds each per-entity lookup. Zero disables it.
	LookupTimeout time.Duration
	// TrackingTimeout bounds the detached trending/history writes. Zero disables it.
	TrackingTimeout time.Duration
	// TrendingWindow is how far back a counter must have been refreshed to count as trending.
	TrendingWindow time.Duration
	// IsolateFailures turns a failed lookup into a warning and an empty list for that type
	// instead of failing the whole search.
	IsolateFailures bool
}

// DefaultConfig - Cấu hình mặc định
func DefaultConfig() Config {
	return Config{
		DefaultLimit:    search.DefaultLimit,
		MaxLimit:        search.MaxLimit,
		LookupTimeout:   0,
		TrackingTimeout: 5 * time.Second,
		TrendingWindow:  7 * 24 * time.Hour,
		IsolateFailures: false,
	}
}

type implUseCase struct {
	repo      repository.PostgresRepository
	cacheRepo repository.CacheRepository
	clicks    search.ClickPublisher
	l         log.Logger
	cfg       Config
	now       func() time.Time

	// tracking counts in-flight best-effort writes so shutdown and tests can wait for them.
	tracking sync.WaitGroup
}

// New - Factory function. clicks may be nil, in which case tracked clicks are only logged.
func New(
	repo repository.PostgresRepository,
	cacheRepo repository.CacheRepository,
	clicks search.ClickPublisher,
	l log.Logger,
	cfg Config,
) search.UseCase {
	def := DefaultConfig()
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = def.MaxLimit
	}
	if cfg.TrendingWindow <= 0 {
		cfg.TrendingWindow = def.TrendingWindow
	}

	return &implUseCase{
		repo:      repo,
		cacheRepo: cacheRepo,
		clicks:    clicks,
		l:         l,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Wait blocks until every detached tracking write started so far has finished.
func (uc *implUseCase) Wait() {
	uc.tracking.Wait()
}
