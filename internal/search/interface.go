package search

import (
	"context"

	"search-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Search runs one universal search: validate, record telemetry, fan out per entity type,
	// score, merge and paginate.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
	// Suggest returns autocomplete strings for a prefix.
	Suggest(ctx context.Context, input SuggestInput) ([]string, error)
	// Trending returns the most searched queries of the recent window.
	Trending(ctx context.Context, input TrendingInput) ([]TrendingQuery, error)
	// Track records that a result was clicked.
	Track(ctx context.Context, sc model.Scope, input TrackInput) error
}

// ClickPublisher forwards click-through events to downstream consumers.
type ClickPublisher interface {
	PublishClick(ctx context.Context, event ClickEvent) error
}
