package model

import "time"

// TrendingQuery is the aggregate counter of one normalized query text within a category.
type TrendingQuery struct {
	Query          string    `json:"query"`
	Category       string    `json:"category"`
	SearchCount    int64     `json:"search_count"`
	LastSearchedAt time.Time `json:"last_searched_at"`
}

// SearchHistoryEntry is an append-only record of one authenticated search.
type SearchHistoryEntry struct {
	ID         int64
	UserID     int64
	Query      string
	SearchedAt time.Time
}
