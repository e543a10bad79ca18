package http

import (
	"time"

	"search-srv/internal/search"
	"search-srv/pkg/paginator"
	"search-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

type searchReq struct {
	Query    string   `form:"q"`
	Types    []string `form:"type[]"`
	TypesAlt []string `form:"type"`
	Limit    *int     `form:"limit"`
	Offset   int      `form:"offset"`
	DateFrom string   `form:"dateFrom"`
	DateTo   string   `form:"dateTo"`
	Location string   `form:"location"`

	dateFrom *time.Time
	dateTo   *time.Time
}

func (r searchReq) toInput() search.SearchInput {
	types := append(append([]string(nil), r.Types...), r.TypesAlt...)
	return search.SearchInput{
		Query:    r.Query,
		Types:    types,
		DateFrom: r.dateFrom,
		DateTo:   r.dateTo,
		Location: r.Location,
		Limit:    intValue(r.Limit),
		Offset:   r.Offset,
	}
}

type suggestReq struct {
	Query string `form:"q"`
	Limit *int   `form:"limit"`
}

func (r suggestReq) toInput() search.SuggestInput {
	return search.SuggestInput{Prefix: r.Query, Limit: intValue(r.Limit)}
}

type trendingReq struct {
	Limit    *int   `form:"limit"`
	Category string `form:"category"`
}

func (r trendingReq) toInput() search.TrendingInput {
	return search.TrendingInput{Limit: intValue(r.Limit), Category: r.Category}
}

// intValue maps an absent limit to zero, which the usecase replaces with its default.
func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

type trackReq struct {
	Query      string   `json:"query"`
	ResultID   resultID `json:"resultId" swaggertype:"string"`
	ResultType string   `json:"resultType"`
	Position   int      `json:"position"`
}

func (r trackReq) toInput() search.TrackInput {
	return search.TrackInput{
		Query:      r.Query,
		ResultID:   string(r.ResultID),
		ResultType: r.ResultType,
		Position:   r.Position,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type searchResp struct {
	Success    bool                 `json:"success"`
	Results    []searchResultResp   `json:"results"`
	Query      string               `json:"query"`
	Filters    filtersResp          `json:"filters"`
	Pagination paginator.Pagination `json:"pagination"`
	Total      int                  `json:"total"`
	Warnings   []string             `json:"warnings,omitempty"`
}

type filtersResp struct {
	Types    []string           `json:"types"`
	DateFrom *response.DateTime `json:"dateFrom,omitempty" swaggertype:"string"`
	DateTo   *response.DateTime `json:"dateTo,omitempty" swaggertype:"string"`
	Location string             `json:"location,omitempty"`
}

type searchResultResp struct {
	ID             int64              `json:"id"`
	Type           string             `json:"type"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	ImageURL       string             `json:"imageUrl,omitempty"`
	Metadata       map[string]any     `json:"metadata"`
	RelevanceScore int                `json:"relevanceScore"`
	CreatedAt      *response.DateTime `json:"createdAt,omitempty" swaggertype:"string"`
}

type suggestResp struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
}

type trendingResp struct {
	Success  bool               `json:"success"`
	Trending []trendingItemResp `json:"trending"`
}

type trendingItemResp struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type trackResp struct {
	Success bool `json:"success"`
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	d := response.DateTime(*t)
	return &d
}

func (h *handler) newSearchResp(output search.SearchOutput) searchResp {
	resp := searchResp{
		Success: true,
		Query:   output.Query,
		Filters: filtersResp{
			Types:    make([]string, len(output.Filters.Types)),
			DateFrom: toDateTime(output.Filters.DateFrom),
			DateTo:   toDateTime(output.Filters.DateTo),
			Location: output.Filters.Location,
		},
		Pagination: paginator.Pagination{
			Limit:   output.Limit,
			Offset:  output.Offset,
			HasMore: output.HasMore,
		},
		Total:    output.Total,
		Warnings: output.Warnings,
	}
	for i, t := range output.Filters.Types {
		resp.Filters.Types[i] = string(t)
	}

	resp.Results = make([]searchResultResp, len(output.Results))
	for i, r := range output.Results {
		metadata := r.Metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		resp.Results[i] = searchResultResp{
			ID:             r.ID,
			Type:           string(r.Type),
			Title:          r.Title,
			Description:    r.Description,
			ImageURL:       r.ImageURL,
			Metadata:       metadata,
			RelevanceScore: r.RelevanceScore,
			CreatedAt:      toDateTime(r.CreatedAt),
		}
	}

	return resp
}

func newSuggestResp(suggestions []string) suggestResp {
	if suggestions == nil {
		suggestions = []string{}
	}
	return suggestResp{Success: true, Suggestions: suggestions}
}

func newTrendingResp(items []search.TrendingQuery) trendingResp {
	resp := trendingResp{Success: true, Trending: make([]trendingItemResp, len(items))}
	for i, it := range items {
		resp.Trending[i] = trendingItemResp{Query: it.Query, Count: it.Count}
	}
	return resp
}
