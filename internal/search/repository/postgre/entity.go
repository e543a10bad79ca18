package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
)

// SearchUsers - person lookup
func (r *implRepository) SearchUsers(ctx context.Context, opt repository.SearchOptions) ([]model.User, error) {
	query, args := buildSearchUsersQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchUsers: %w", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Username, &u.Bio,
			&u.ProfileImage, &u.City, &u.Country, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: SearchUsers scan: %w", repository.ErrFailedToSearch, err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// SearchPosts - content-post lookup
func (r *implRepository) SearchPosts(ctx context.Context, opt repository.SearchOptions) ([]model.Post, error) {
	query, args := buildSearchPostsQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchPosts: %w", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.AuthorName, &p.Content,
			&p.ImageURL, &p.Likes, &p.Comments, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: SearchPosts scan: %w", repository.ErrFailedToSearch, err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// SearchEvents - event lookup
func (r *implRepository) SearchEvents(ctx context.Context, opt repository.SearchEventsOptions) ([]model.Event, error) {
	query, args := buildSearchEventsQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchEvents: %w", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var endDate sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &e.Description, &e.Location,
			&e.ImageURL, &e.StartDate, &endDate, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: SearchEvents scan: %w", repository.ErrFailedToSearch, err)
		}
		if endDate.Valid {
			e.EndDate = &endDate.Time
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// SearchGroups - group lookup
func (r *implRepository) SearchGroups(ctx context.Context, opt repository.SearchOptions) ([]model.Group, error) {
	query, args := buildSearchGroupsQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchGroups: %w", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(
			&g.ID, &g.Name, &g.Description, &g.Type, &g.ImageURL,
			&g.MemberCount, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: SearchGroups scan: %w", repository.ErrFailedToSearch, err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// SearchMemories - memory lookup with visibility filter
func (r *implRepository) SearchMemories(ctx context.Context, opt repository.SearchMemoriesOptions) ([]model.Memory, error) {
	query, args := buildSearchMemoriesQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchMemories: %w", repository.ErrFailedToSearch, err)
	}
	defer rows.Close()

	var memories []model.Memory
	for rows.Next() {
		var m model.Memory
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Content, &m.ImageURL, &m.IsPrivate, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: SearchMemories scan: %w", repository.ErrFailedToSearch, err)
		}
		memories = append(memories, m)
	}

	return memories, rows.Err()
}
