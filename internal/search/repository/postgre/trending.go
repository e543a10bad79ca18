package postgre

import (
	"context"
	"fmt"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
)

// IncrementTrending - bump the counter for a normalized query
func (r *implRepository) IncrementTrending(ctx context.Context, opt repository.IncrementTrendingOptions) error {
	query, args := buildIncrementTrendingQuery(opt)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: IncrementTrending: %w", repository.ErrFailedToUpsert, err)
	}
	return nil
}

// ListTrending - counters refreshed since opt.Since, most searched first
func (r *implRepository) ListTrending(ctx context.Context, opt repository.ListTrendingOptions) ([]model.TrendingQuery, error) {
	query, args := buildListTrendingQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTrending: %w", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var items []model.TrendingQuery
	for rows.Next() {
		var t model.TrendingQuery
		if err := rows.Scan(&t.Query, &t.Category, &t.SearchCount, &t.LastSearchedAt); err != nil {
			return nil, fmt.Errorf("%w: ListTrending scan: %w", repository.ErrFailedToSearch, err)
		}
		items = append(items, t)
	}

	return items, rows.Err()
}

// SuggestTrending - trending texts starting with the prefix
func (r *implRepository) SuggestTrending(ctx context.Context, opt repository.PrefixOptions) ([]string, error) {
	query, args := buildSuggestTrendingQuery(opt)
	texts, err := r.queryStrings(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: SuggestTrending: %w", repository.ErrFailedToSearch, err)
	}
	return texts, nil
}

// AppendHistory - record one authenticated search
func (r *implRepository) AppendHistory(ctx context.Context, opt repository.AppendHistoryOptions) error {
	query, args := buildAppendHistoryQuery(opt)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendHistory: %w", repository.ErrFailedToInsert, err)
	}
	return nil
}
