package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"search-srv/internal/search"
	"search-srv/pkg/paginator"
)

// request is a validated search: normalized query, canonical type list and checked page.
type request struct {
	normalized string
	types      []search.EntityType
	page       paginator.OffsetQuery
	filters    search.AppliedFilters
}

func (uc *implUseCase) validateInput(input search.SearchInput) (request, error) {
	trimmed := strings.TrimSpace(input.Query)
	if utf8.RuneCountInString(trimmed) < search.MinQueryLength {
		return request{}, search.ErrQueryTooShort
	}
	if len(trimmed) > search.MaxQueryLength {
		return request{}, search.ErrQueryTooLong
	}

	types, err := normalizeTypes(input.Types)
	if err != nil {
		return request{}, err
	}

	page := paginator.OffsetQuery{Limit: input.Limit, Offset: input.Offset}
	if err := page.Normalize(uc.cfg.DefaultLimit, uc.cfg.MaxLimit); err != nil {
		return request{}, fmt.Errorf("%w: %v", search.ErrInvalidPagination, err)
	}

	if input.DateFrom != nil && input.DateTo != nil && input.DateFrom.After(*input.DateTo) {
		return request{}, search.ErrInvalidDateRange
	}

	location := strings.TrimSpace(input.Location)

	return request{
		normalized: strings.ToLower(trimmed),
		types:      types,
		page:       page,
		filters: search.AppliedFilters{
			Types:    types,
			DateFrom: input.DateFrom,
			DateTo:   input.DateTo,
			Location: location,
		},
	}, nil
}

// normalizeTypes returns the requested kinds deduplicated and in fan-out order.
// An empty filter selects every kind.
func normalizeTypes(raw []string) ([]search.EntityType, error) {
	if len(raw) == 0 {
		return append([]search.EntityType(nil), search.EntityTypes...), nil
	}

	wanted := make(map[search.EntityType]bool, len(raw))
	for _, token := range raw {
		t, ok := search.ParseEntityType(strings.ToLower(strings.TrimSpace(token)))
		if !ok {
			return nil, fmt.Errorf("%w: %q", search.ErrUnknownEntityType, token)
		}
		wanted[t] = true
	}

	types := make([]search.EntityType, 0, len(wanted))
	for _, t := range search.EntityTypes {
		if wanted[t] {
			types = append(types, t)
		}
	}
	return types, nil
}
