package usecase

import (
	"context"
	"strings"

	"search-srv/internal/metrics"
	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"

	"github.com/google/uuid"
)

// trackSearch upserts the trending counter and, for a known caller, appends history.
// The writes are detached from the request so a cancelled client does not drop them,
// and their failures never reach the caller.
func (uc *implUseCase) trackSearch(ctx context.Context, sc model.Scope, normalized string) {
	bg := context.WithoutCancel(ctx)
	searchedAt := uc.now()
	userID := viewerID(sc)

	uc.tracking.Add(1)
	go func() {
		defer uc.tracking.Done()

		tctx := bg
		if uc.cfg.TrackingTimeout > 0 {
			var cancel context.CancelFunc
			tctx, cancel = context.WithTimeout(bg, uc.cfg.TrackingTimeout)
			defer cancel()
		}

		if err := uc.repo.IncrementTrending(tctx, repository.IncrementTrendingOptions{
			Query:      normalized,
			Category:   search.DefaultCategory,
			SearchedAt: searchedAt,
		}); err != nil {
			metrics.TrackingFailuresTotal.WithLabelValues("trending").Inc()
			uc.l.Warnf(bg, "search.usecase.trackSearch: IncrementTrending: %v", err)
		}

		if userID == nil {
			return
		}
		if err := uc.repo.AppendHistory(tctx, repository.AppendHistoryOptions{
			UserID:     *userID,
			Query:      normalized,
			SearchedAt: searchedAt,
		}); err != nil {
			metrics.TrackingFailuresTotal.WithLabelValues("history").Inc()
			uc.l.Warnf(bg, "search.usecase.trackSearch: AppendHistory: %v", err)
		}
	}()
}

// Track - record a click on a search result
func (uc *implUseCase) Track(ctx context.Context, sc model.Scope, input search.TrackInput) error {
	query := strings.TrimSpace(input.Query)
	if query == "" || strings.TrimSpace(input.ResultID) == "" || input.Position < 0 {
		return search.ErrInvalidTrackInput
	}
	resultType, ok := search.ParseEntityType(input.ResultType)
	if !ok {
		return search.ErrUnknownEntityType
	}

	event := search.ClickEvent{
		EventID:    uuid.NewString(),
		Query:      strings.ToLower(query),
		ResultID:   input.ResultID,
		ResultType: resultType,
		Position:   input.Position,
		UserID:     sc.UserID,
		ClickedAt:  uc.now(),
	}

	uc.l.Infof(ctx, "search.usecase.Track: query=%q, result=%s:%s, position=%d",
		event.Query, event.ResultType, event.ResultID, event.Position)

	if uc.clicks == nil {
		return nil
	}
	if err := uc.clicks.PublishClick(ctx, event); err != nil {
		metrics.TrackingFailuresTotal.WithLabelValues("click").Inc()
		uc.l.Warnf(ctx, "search.usecase.Track: PublishClick: %v", err)
	}
	return nil
}
