package repository

import (
	"context"

	"search-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	EntityRepository
	TrendingRepository
	HistoryRepository
}

// EntityRepository - read-only lookups, one per searchable collection
type EntityRepository interface {
	SearchUsers(ctx context.Context, opt SearchOptions) ([]model.User, error)
	SearchPosts(ctx context.Context, opt SearchOptions) ([]model.Post, error)
	SearchEvents(ctx context.Context, opt SearchEventsOptions) ([]model.Event, error)
	SearchGroups(ctx context.Context, opt SearchOptions) ([]model.Group, error)
	SearchMemories(ctx context.Context, opt SearchMemoriesOptions) ([]model.Memory, error)

	SuggestUserNames(ctx context.Context, opt PrefixOptions) ([]string, error)
	SuggestGroupNames(ctx context.Context, opt PrefixOptions) ([]string, error)
}

// TrendingRepository - the trending query counter store
type TrendingRepository interface {
	IncrementTrending(ctx context.Context, opt IncrementTrendingOptions) error
	ListTrending(ctx context.Context, opt ListTrendingOptions) ([]model.TrendingQuery, error)
	SuggestTrending(ctx context.Context, opt PrefixOptions) ([]string, error)
}

// HistoryRepository - append-only per-user search history
type HistoryRepository interface {
	AppendHistory(ctx context.Context, opt AppendHistoryOptions) error
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSuggestions(ctx context.Context, key string) ([]string, error)
	SaveSuggestions(ctx context.Context, key string, suggestions []string) error

	GetTrending(ctx context.Context, key string) ([]model.TrendingQuery, error)
	SaveTrending(ctx context.Context, key string, items []model.TrendingQuery) error
}
