package postgre

import (
	"strings"

	"search-srv/internal/search/repository"
)

// buildSearchUsersQuery - name, username or bio contains the pattern
func buildSearchUsersQuery(opt repository.SearchOptions) (string, []any) {
	var args argList
	p := args.add(opt.Pattern)
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(username, ''), COALESCE(bio, ''),
		       COALESCE(profile_image, ''), COALESCE(city, ''), COALESCE(country, ''), created_at
		FROM users
		WHERE name ILIKE ` + p + ` OR username ILIKE ` + p + ` OR bio ILIKE ` + p + `
		ORDER BY id ASC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}

// buildSearchPostsQuery - post body contains the pattern, newest first
func buildSearchPostsQuery(opt repository.SearchOptions) (string, []any) {
	var args argList
	query := `
		SELECT p.id, p.user_id, COALESCE(NULLIF(u.name, ''), u.username, ''), p.content,
		       COALESCE(p.image_url, ''), COALESCE(p.likes, 0), COALESCE(p.comments, 0), p.created_at
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.content ILIKE ` + args.add(opt.Pattern) + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}

// buildSearchEventsQuery - title, description or location contains the pattern.
// Date bounds and the location filter only exist for events. Soonest events come first.
func buildSearchEventsQuery(opt repository.SearchEventsOptions) (string, []any) {
	var args argList
	p := args.add(opt.Pattern)

	var sb strings.Builder
	sb.WriteString(`
		SELECT id, COALESCE(user_id, 0), title, COALESCE(description, ''), COALESCE(location, ''),
		       COALESCE(image_url, ''), start_date, end_date, created_at
		FROM events
		WHERE (title ILIKE ` + p + ` OR description ILIKE ` + p + ` OR location ILIKE ` + p + `)`)

	if opt.DateFrom != nil {
		sb.WriteString(" AND start_date >= " + args.add(*opt.DateFrom))
	}
	if opt.DateTo != nil {
		sb.WriteString(" AND start_date <= " + args.add(*opt.DateTo))
	}
	if opt.LocationPattern != "" {
		sb.WriteString(" AND location ILIKE " + args.add(opt.LocationPattern))
	}

	sb.WriteString(" ORDER BY start_date ASC, id ASC LIMIT " + args.add(opt.Limit))
	return sb.String(), args.values
}

// buildSearchGroupsQuery - name or description contains the pattern; member count is a scalar subquery
func buildSearchGroupsQuery(opt repository.SearchOptions) (string, []any) {
	var args argList
	p := args.add(opt.Pattern)
	query := `
		SELECT g.id, g.name, COALESCE(g.description, ''), COALESCE(g.type, ''), COALESCE(g.image_url, ''),
		       (SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) AS member_count,
		       g.created_at
		FROM "groups" g
		WHERE g.name ILIKE ` + p + ` OR g.description ILIKE ` + p + `
		ORDER BY g.id ASC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}

// buildSearchMemoriesQuery - content contains the pattern and the memory is visible to the viewer:
// public, or private and owned by the viewer. Anonymous viewers only see public memories.
func buildSearchMemoriesQuery(opt repository.SearchMemoriesOptions) (string, []any) {
	var args argList
	p := args.add(opt.Pattern)

	visibility := "is_private = FALSE"
	if opt.ViewerID != nil {
		visibility = "(is_private = FALSE OR user_id = " + args.add(*opt.ViewerID) + ")"
	}

	query := `
		SELECT id, user_id, content, COALESCE(image_url, ''), is_private, created_at
		FROM memories
		WHERE content ILIKE ` + p + ` AND ` + visibility + `
		ORDER BY created_at DESC, id DESC
		LIMIT ` + args.add(opt.Limit)
	return query, args.values
}
