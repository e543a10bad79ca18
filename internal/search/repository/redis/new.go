package redis

import (
	"time"

	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
	pkgRedis "search-srv/pkg/redis"
)

const (
	DefaultSuggestionTTL = time.Minute
	DefaultTrendingTTL   = 5 * time.Minute
)

// Config - cache TTLs
type Config struct {
	SuggestionTTL time.Duration
	TrendingTTL   time.Duration
}

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	cfg   Config
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, cfg Config) repository.CacheRepository {
	if cfg.SuggestionTTL <= 0 {
		cfg.SuggestionTTL = DefaultSuggestionTTL
	}
	if cfg.TrendingTTL <= 0 {
		cfg.TrendingTTL = DefaultTrendingTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		cfg:   cfg,
	}
}
