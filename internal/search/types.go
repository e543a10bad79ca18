package search

import (
	"time"
)

const (
	MinQueryLength = 2
	MaxQueryLength = 500

	DefaultLimit = 20
	MaxLimit     = 50

	DefaultSuggestionLimit = 10
	MaxSuggestionLimit     = 20
	// SuggestionSourceLimit caps person and group names contributed to one suggestion list.
	SuggestionSourceLimit = 5

	DefaultTrendingLimit = 10
	MaxTrendingLimit     = 50

	// DefaultCategory is the category every search is counted under.
	DefaultCategory = "all"

	// TitleMaxLength is the rune length after which post and memory titles are cut.
	TitleMaxLength = 100
	TitleEllipsis  = "..."
)

// EntityType is one of the searchable kinds.
type EntityType string

const (
	EntityUser   EntityType = "user"
	EntityPost   EntityType = "post"
	EntityEvent  EntityType = "event"
	EntityGroup  EntityType = "group"
	EntityMemory EntityType = "memory"
)

// EntityTypes lists every kind in fan-out order.
var EntityTypes = []EntityType{EntityUser, EntityPost, EntityEvent, EntityGroup, EntityMemory}

// ParseEntityType maps a request token to an EntityType.
func ParseEntityType(s string) (EntityType, bool) {
	for _, t := range EntityTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// SearchInput - one universal search request
type SearchInput struct {
	Query    string
	Types    []string // raw tokens; empty means every type
	DateFrom *time.Time
	DateTo   *time.Time
	Location string
	Limit    int
	Offset   int
}

// SearchOutput - one page of merged results
type SearchOutput struct {
	Results  []SearchResult
	Total    int
	Query    string
	Filters  AppliedFilters
	Limit    int
	Offset   int
	HasMore  bool
	Warnings []string
}

// AppliedFilters echoes the filters after validation.
type AppliedFilters struct {
	Types    []EntityType
	DateFrom *time.Time
	DateTo   *time.Time
	Location string
}

// SearchResult - a typed, scored hit. Results are computed per request and never stored.
type SearchResult struct {
	ID             int64
	Type           EntityType
	Title          string
	Description    string
	ImageURL       string
	Metadata       map[string]any
	RelevanceScore int
	CreatedAt      *time.Time
}

// SuggestInput - autocomplete request
type SuggestInput struct {
	Prefix string
	Limit  int
}

// TrendingInput - trending request
type TrendingInput struct {
	Limit    int
	Category string
}

// TrendingQuery - one trending entry
type TrendingQuery struct {
	Query string
	Count int64
}

// TrackInput - a click on a search result
type TrackInput struct {
	Query      string
	ResultID   string
	ResultType string
	Position   int
}

// ClickEvent is what gets published for every tracked click.
type ClickEvent struct {
	EventID    string
	Query      string
	ResultID   string
	ResultType EntityType
	Position   int
	UserID     string
	ClickedAt  time.Time
}
