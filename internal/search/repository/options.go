package repository

import "time"

// SearchOptions - shared by every entity lookup.
// Pattern is a ready-to-use ILIKE pattern (already escaped and wrapped in %).
type SearchOptions struct {
	Pattern string
	Limit   int
}

// SearchEventsOptions - events additionally honor date and location filters
type SearchEventsOptions struct {
	SearchOptions
	DateFrom        *time.Time
	DateTo          *time.Time
	LocationPattern string
}

// SearchMemoriesOptions - ViewerID is nil for anonymous callers
type SearchMemoriesOptions struct {
	SearchOptions
	ViewerID *int64
}

// PrefixOptions - Pattern is an escaped prefix pattern ending in %
type PrefixOptions struct {
	Pattern string
	Limit   int
}

type IncrementTrendingOptions struct {
	Query      string
	Category   string
	SearchedAt time.Time
}

type ListTrendingOptions struct {
	Category string
	Since    time.Time
	Limit    int
}

type AppendHistoryOptions struct {
	UserID     int64
	Query      string
	SearchedAt time.Time
}
