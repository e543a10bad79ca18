package postgre

import "search-srv/internal/search/repository"

func buildSuggestUserNamesQuery(opt repository.PrefixOptions) (string, []any) {
	var args argList
	query := `
		SELECT name
		FROM users
		WHERE name ILIKE ` + args.add(opt.Pattern) + `
		GROUP BY name
		ORDER BY name ASC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}

func buildSuggestGroupNamesQuery(opt repository.PrefixOptions) (string, []any) {
	var args argList
	query := `
		SELECT name
		FROM "groups"
		WHERE name ILIKE ` + args.add(opt.Pattern) + `
		GROUP BY name
		ORDER BY name ASC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}

// buildSuggestTrendingQuery - the same text may be counted under several categories, so counts are summed
func buildSuggestTrendingQuery(opt repository.PrefixOptions) (string, []any) {
	var args argList
	query := `
		SELECT query
		FROM search_trending
		WHERE query ILIKE ` + args.add(opt.Pattern) + `
		GROUP BY query
		ORDER BY SUM(search_count) DESC, query ASC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}
