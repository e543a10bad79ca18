package postgre

import "search-srv/internal/search/repository"

// buildIncrementTrendingQuery - upsert: first search inserts count=1, later ones bump it.
// Concurrent identical searches each increment; no deduplication.
func buildIncrementTrendingQuery(opt repository.IncrementTrendingOptions) (string, []any) {
	var args argList
	query := `
		INSERT INTO search_trending (query, category, search_count, last_searched_at)
		VALUES (` + args.add(opt.Query) + `, ` + args.add(opt.Category) + `, 1, ` + args.add(opt.SearchedAt) + `)
		ON CONFLICT (query, category) DO UPDATE
		SET search_count = search_trending.search_count + 1,
		    last_searched_at = EXCLUDED.last_searched_at`
	return query, args.values
}

func buildListTrendingQuery(opt repository.ListTrendingOptions) (string, []any) {
	var args argList
	query := `
		SELECT query, category, search_count, last_searched_at
		FROM search_trending
		WHERE last_searched_at >= ` + args.add(opt.Since) + `
		  AND category = ` + args.add(opt.Category) + `
		ORDER BY search_count DESC, query ASC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}

func buildAppendHistoryQuery(opt repository.AppendHistoryOptions) (string, []any) {
	var args argList
	query := `
		INSERT INTO search_history (user_id, query, searched_at)
		VALUES (` + args.add(opt.UserID) + `, ` + args.add(opt.Query) + `, ` + args.add(opt.SearchedAt) + `)`
	return query, args.values
}
