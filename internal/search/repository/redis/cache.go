package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"

	goredis "github.com/redis/go-redis/v9"
)

// =====================================================
// Suggestions (TTL 1 min)
// =====================================================

func (r *implCacheRepository) GetSuggestions(ctx context.Context, key string) ([]string, error) {
	var suggestions []string
	if err := r.getJSON(ctx, key, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *implCacheRepository) SaveSuggestions(ctx context.Context, key string, suggestions []string) error {
	return r.setJSON(ctx, key, suggestions, r.cfg.SuggestionTTL)
}

// =====================================================
// Trending (TTL 5 min)
// =====================================================

func (r *implCacheRepository) GetTrending(ctx context.Context, key string) ([]model.TrendingQuery, error) {
	var items []model.TrendingQuery
	if err := r.getJSON(ctx, key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *implCacheRepository) SaveTrending(ctx context.Context, key string, items []model.TrendingQuery) error {
	return r.setJSON(ctx, key, items, r.cfg.TrendingTTL)
}

func (r *implCacheRepository) getJSON(ctx context.Context, key string, dst any) error {
	data, err := r.redis.Get(ctx, key)
	if errors.Is(err, goredis.Nil) {
		return repository.ErrCacheMiss
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.getJSON: Failed to unmarshal %s: %v", key, err)
		return err
	}
	return nil
}

func (r *implCacheRepository) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		r.l.Errorf(ctx, "search.repository.redis.setJSON: Failed to save %s: %v", key, err)
		return err
	}
	return nil
}
