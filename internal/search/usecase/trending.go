package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"search-srv/internal/metrics"
	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

const trendingCacheKey = "search:trending:%s:%d"

// Trending - most searched queries refreshed within the trending window
func (uc *implUseCase) Trending(ctx context.Context, input search.TrendingInput) ([]search.TrendingQuery, error) {
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultTrendingLimit
	}
	if limit < 1 || limit > search.MaxTrendingLimit {
		return nil, search.ErrInvalidPagination
	}

	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category == "" {
		category = search.DefaultCategory
	}

	key := fmt.Sprintf(trendingCacheKey, category, limit)
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetTrending(ctx, key)
		if err == nil {
			metrics.CacheTotal.WithLabelValues("trending", "hit").Inc()
			return toTrendingQueries(cached), nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "search.usecase.Trending: cache read: %v", err)
		}
		metrics.CacheTotal.WithLabelValues("trending", "miss").Inc()
	}

	items, err := uc.repo.ListTrending(ctx, repository.ListTrendingOptions{
		Category: category,
		Since:    uc.now().Add(-uc.cfg.TrendingWindow),
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Trending: ListTrending: %v", err)
		return nil, fmt.Errorf("%w: trending: %v", search.ErrBackend, err)
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SaveTrending(ctx, key, items); err != nil {
			uc.l.Warnf(ctx, "search.usecase.Trending: Failed to save cache: %v", err)
		}
	}

	return toTrendingQueries(items), nil
}

func toTrendingQueries(items []model.TrendingQuery) []search.TrendingQuery {
	out := make([]search.TrendingQuery, 0, len(items))
	for _, it := range items {
		out = append(out, search.TrendingQuery{Query: it.Query, Count: it.SearchCount})
	}
	return out
}
