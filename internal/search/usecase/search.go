package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"search-srv/internal/metrics"
	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"

	"golang.org/x/sync/errgroup"
)

// Search - Main search method
// Flow: validate → record telemetry (detached) → fan out per type → score → merge → paginate
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input search.SearchInput) (search.SearchOutput, error) {
	startTime := uc.now()

	// Step 1: Validate before any store is touched
	req, err := uc.validateInput(input)
	if err != nil {
		return search.SearchOutput{}, err
	}

	// Step 2: Trending counter + history, best-effort
	uc.trackSearch(ctx, sc, req.normalized)

	// Step 3: Fan out, one lookup per requested type
	lists, warnings, err := uc.fanOut(ctx, sc, req)
	if err != nil {
		return search.SearchOutput{}, err
	}

	// Step 4: Merge and slice the page over the merged list
	merged := mergeResults(lists)
	start, end := req.page.Window(len(merged))
	page := merged[start:end]

	metrics.SearchResultsTotal.WithLabelValues(scopeLabel(sc)).Observe(float64(len(merged)))

	output := search.SearchOutput{
		Results:  page,
		Total:    len(merged),
		Query:    input.Query,
		Filters:  req.filters,
		Limit:    req.page.Limit,
		Offset:   req.page.Offset,
		HasMore:  len(page) == req.page.Limit,
		Warnings: warnings,
	}

	uc.l.Infof(ctx, "search.usecase.Search: query=%q, types=%v, total=%d, page=%d, duration=%dms",
		req.normalized, req.types, output.Total, len(page), uc.now().Sub(startTime).Milliseconds())

	return output, nil
}

// fanOut runs every lookup concurrently. Each goroutine writes only its own slot,
// so lists keeps fan-out order regardless of completion order.
func (uc *implUseCase) fanOut(ctx context.Context, sc model.Scope, req request) ([][]search.SearchResult, []string, error) {
	s := newScorer(req.normalized)
	base := repository.SearchOptions{
		Pattern: repository.ContainsPattern(req.normalized),
		Limit:   req.page.Limit,
	}

	lists := make([][]search.SearchResult, len(req.types))
	var (
		mu       sync.Mutex
		warnings []string
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range req.types {
		g.Go(func() error {
			res, err := uc.lookup(gctx, s, t, base, sc, req)
			if err == nil {
				lists[i] = res
				return nil
			}

			// a cancelled or expired request aborts the search in every mode
			if ctx.Err() != nil {
				return ctx.Err()
			}

			// a lookup that ran out its own timeout is an empty list, not a failed search
			timedOut := uc.cfg.LookupTimeout > 0 && errors.Is(err, context.DeadlineExceeded)
			if !uc.cfg.IsolateFailures && !timedOut {
				uc.l.Errorf(ctx, "search.usecase.fanOut: %s lookup failed: %v", t, err)
				return fmt.Errorf("%w: %s: %v", search.ErrBackend, t, err)
			}

			uc.l.Warnf(ctx, "search.usecase.fanOut: %s lookup failed, returning partial results: %v", t, err)
			mu.Lock()
			warnings = append(warnings, fmt.Sprintf("%s results unavailable", t))
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// warnings order follows completion; sort them back to fan-out order
	return lists, orderWarnings(warnings, req.types), nil
}

// lookup runs one entity lookup under the optional per-lookup timeout and projects its rows.
func (uc *implUseCase) lookup(ctx context.Context, s *scorer, t search.EntityType, base repository.SearchOptions, sc model.Scope, req request) ([]search.SearchResult, error) {
	if uc.cfg.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.LookupTimeout)
		defer cancel()
	}

	started := time.Now()
	res, err := uc.runLookup(ctx, s, t, base, sc, req)

	status := "ok"
	if err != nil {
		status = "error"
		// drivers report a cancelled statement in their own words
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
	}
	metrics.LookupDuration.WithLabelValues(string(t), status).Observe(time.Since(started).Seconds())

	return res, err
}

func (uc *implUseCase) runLookup(ctx context.Context, s *scorer, t search.EntityType, base repository.SearchOptions, sc model.Scope, req request) ([]search.SearchResult, error) {
	switch t {
	case search.EntityUser:
		rows, err := uc.repo.SearchUsers(ctx, base)
		if err != nil {
			return nil, err
		}
		return projectAll(rows, s.projectUser), nil

	case search.EntityPost:
		rows, err := uc.repo.SearchPosts(ctx, base)
		if err != nil {
			return nil, err
		}
		return projectAll(rows, s.projectPost), nil

	case search.EntityEvent:
		opt := repository.SearchEventsOptions{
			SearchOptions: base,
			DateFrom:      req.filters.DateFrom,
			DateTo:        req.filters.DateTo,
		}
		if req.filters.Location != "" {
			opt.LocationPattern = repository.ContainsPattern(req.filters.Location)
		}
		rows, err := uc.repo.SearchEvents(ctx, opt)
		if err != nil {
			return nil, err
		}
		return projectAll(rows, s.projectEvent), nil

	case search.EntityGroup:
		rows, err := uc.repo.SearchGroups(ctx, base)
		if err != nil {
			return nil, err
		}
		return projectAll(rows, s.projectGroup), nil

	case search.EntityMemory:
		rows, err := uc.repo.SearchMemories(ctx, repository.SearchMemoriesOptions{
			SearchOptions: base,
			ViewerID:      viewerID(sc),
		})
		if err != nil {
			return nil, err
		}
		return projectAll(rows, s.projectMemory), nil
	}

	return nil, fmt.Errorf("%w: %q", search.ErrUnknownEntityType, t)
}

func projectAll[T any](rows []T, project func(T) search.SearchResult) []search.SearchResult {
	out := make([]search.SearchResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, project(r))
	}
	return out
}

func orderWarnings(warnings []string, types []search.EntityType) []string {
	if len(warnings) < 2 {
		return warnings
	}
	ordered := make([]string, 0, len(warnings))
	for _, t := range types {
		w := fmt.Sprintf("%s results unavailable", t)
		for _, got := range warnings {
			if got == w {
				ordered = append(ordered, w)
				break
			}
		}
	}
	return ordered
}

func scopeLabel(sc model.Scope) string {
	if sc.IsAuthenticated() {
		return "authenticated"
	}
	return "anonymous"
}
