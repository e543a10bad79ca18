package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"search-srv/internal/metrics"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

const suggestCacheKey = "search:suggest:%d:%s"

// Suggest - autocomplete strings, trending texts first, then person names, then group names
func (uc *implUseCase) Suggest(ctx context.Context, input search.SuggestInput) ([]string, error) {
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultSuggestionLimit
	}
	if limit < 1 || limit > search.MaxSuggestionLimit {
		return nil, search.ErrInvalidPagination
	}

	prefix := strings.ToLower(strings.TrimSpace(input.Prefix))
	if utf8.RuneCountInString(prefix) < search.MinQueryLength {
		return []string{}, nil
	}

	key := fmt.Sprintf(suggestCacheKey, limit, prefix)
	if cached, ok := uc.cachedSuggestions(ctx, key); ok {
		return cached, nil
	}

	pattern := repository.PrefixPattern(prefix)
	sources := []struct {
		name  string
		limit int
		fetch func(context.Context, repository.PrefixOptions) ([]string, error)
	}{
		{"trending", limit, uc.repo.SuggestTrending},
		{"users", search.SuggestionSourceLimit, uc.repo.SuggestUserNames},
		{"groups", search.SuggestionSourceLimit, uc.repo.SuggestGroupNames},
	}

	seen := make(map[string]bool)
	suggestions := make([]string, 0, limit)
	for _, src := range sources {
		items, err := src.fetch(ctx, repository.PrefixOptions{Pattern: pattern, Limit: src.limit})
		if err != nil {
			uc.l.Errorf(ctx, "search.usecase.Suggest: %s: %v", src.name, err)
			return nil, fmt.Errorf("%w: suggest %s: %v", search.ErrBackend, src.name, err)
		}
		for _, s := range items {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SaveSuggestions(ctx, key, suggestions); err != nil {
			uc.l.Warnf(ctx, "search.usecase.Suggest: Failed to save cache: %v", err)
		}
	}

	return suggestions, nil
}

func (uc *implUseCase) cachedSuggestions(ctx context.Context, key string) ([]string, bool) {
	if uc.cacheRepo == nil {
		return nil, false
	}
	cached, err := uc.cacheRepo.GetSuggestions(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "search.usecase.Suggest: cache read: %v", err)
		}
		metrics.CacheTotal.WithLabelValues("suggestions", "miss").Inc()
		return nil, false
	}
	metrics.CacheTotal.WithLabelValues("suggestions", "hit").Inc()
	if cached == nil {
		cached = []string{}
	}
	return cached, true
}
