package usecase

import (
	"fmt"
	"strconv"
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/pkg/util"
)

// Projections from stored rows to scored results. The scored text per kind:
// user name+username+bio, post content, event title+description+location,
// group name+description, memory content.

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (s *scorer) projectUser(u model.User) search.SearchResult {
	title := u.Name
	if title == "" {
		title = u.Username
	}
	return search.SearchResult{
		ID:          u.ID,
		Type:        search.EntityUser,
		Title:       title,
		Description: u.Bio,
		ImageURL:    u.ProfileImage,
		Metadata: map[string]any{
			"username": u.Username,
			"city":     u.City,
			"country":  u.Country,
		},
		RelevanceScore: s.Score(util.JoinNonEmpty(" ", u.Name, u.Username, u.Bio)),
		CreatedAt:      timePtr(u.CreatedAt),
	}
}

func (s *scorer) projectPost(p model.Post) search.SearchResult {
	description := ""
	if p.AuthorName != "" {
		description = "By " + p.AuthorName
	}
	return search.SearchResult{
		ID:          p.ID,
		Type:        search.EntityPost,
		Title:       util.Truncate(p.Content, search.TitleMaxLength, search.TitleEllipsis),
		Description: description,
		ImageURL:    p.ImageURL,
		Metadata: map[string]any{
			"authorId": p.UserID,
			"likes":    p.Likes,
			"comments": p.Comments,
		},
		RelevanceScore: s.Score(p.Content),
		CreatedAt:      timePtr(p.CreatedAt),
	}
}

func (s *scorer) projectEvent(e model.Event) search.SearchResult {
	metadata := map[string]any{
		"location":  e.Location,
		"startDate": e.StartDate,
		"organizer": e.UserID,
	}
	if e.EndDate != nil {
		metadata["endDate"] = *e.EndDate
	}
	return search.SearchResult{
		ID:             e.ID,
		Type:           search.EntityEvent,
		Title:          e.Title,
		Description:    e.Description,
		ImageURL:       e.ImageURL,
		Metadata:       metadata,
		RelevanceScore: s.Score(util.JoinNonEmpty(" ", e.Title, e.Description, e.Location)),
		CreatedAt:      timePtr(e.CreatedAt),
	}
}

func (s *scorer) projectGroup(g model.Group) search.SearchResult {
	return search.SearchResult{
		ID:          g.ID,
		Type:        search.EntityGroup,
		Title:       g.Name,
		Description: fmt.Sprintf("%s • %d members", g.Type, g.MemberCount),
		ImageURL:    g.ImageURL,
		Metadata: map[string]any{
			"type":        g.Type,
			"memberCount": g.MemberCount,
		},
		RelevanceScore: s.Score(util.JoinNonEmpty(" ", g.Name, g.Description)),
		CreatedAt:      timePtr(g.CreatedAt),
	}
}

func (s *scorer) projectMemory(m model.Memory) search.SearchResult {
	return search.SearchResult{
		ID:          m.ID,
		Type:        search.EntityMemory,
		Title:       util.Truncate(m.Content, search.TitleMaxLength, search.TitleEllipsis),
		Description: "",
		ImageURL:    m.ImageURL,
		Metadata: map[string]any{
			"userId":    m.UserID,
			"isPrivate": m.IsPrivate,
		},
		RelevanceScore: s.Score(m.Content),
		CreatedAt:      timePtr(m.CreatedAt),
	}
}

// viewerID parses the caller id for memory visibility and history.
// Anonymous or non-numeric ids yield nil.
func viewerID(sc model.Scope) *int64 {
	if !sc.IsAuthenticated() {
		return nil
	}
	id, err := strconv.ParseInt(sc.UserID, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
