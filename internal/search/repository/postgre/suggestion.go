package postgre

import (
	"context"
	"fmt"

	"search-srv/internal/search/repository"
)

// SuggestUserNames - person display names starting with the prefix
func (r *implRepository) SuggestUserNames(ctx context.Context, opt repository.PrefixOptions) ([]string, error) {
	query, args := buildSuggestUserNamesQuery(opt)
	names, err := r.queryStrings(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: SuggestUserNames: %w", repository.ErrFailedToSearch, err)
	}
	return names, nil
}

// SuggestGroupNames - group names starting with the prefix
func (r *implRepository) SuggestGroupNames(ctx context.Context, opt repository.PrefixOptions) ([]string, error) {
	query, args := buildSuggestGroupNamesQuery(opt)
	names, err := r.queryStrings(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: SuggestGroupNames: %w", repository.ErrFailedToSearch, err)
	}
	return names, nil
}

func (r *implRepository) queryStrings(ctx context.Context, query string, args []any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
