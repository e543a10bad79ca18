package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tangoRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.users = []model.User{{ID: 1, Name: "Tango Teacher", Username: "maestro"}}
	repo.posts = []model.Post{{ID: 2, UserID: 1, AuthorName: "Tango Teacher", Content: "I love dancing tango at night"}}
	repo.events = []model.Event{{
		ID:        3,
		Title:     "Buenos Aires Tango Festival",
		Location:  "Buenos Aires",
		StartDate: time.Date(2026, 4, 1, 20, 0, 0, 0, time.UTC),
	}}
	return repo
}

func TestSearch_TangoScenario(t *testing.T) {
	uc := newTestUseCase(tangoRepo(), nil, DefaultConfig())

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tango", Limit: 20})
	uc.tracking.Wait()
	require.NoError(t, err)

	require.Len(t, out.Results, 3)
	assert.Equal(t, 3, out.Total)
	assert.False(t, out.HasMore)
	assert.Equal(t, "tango", out.Query)

	assert.Equal(t, search.EntityUser, out.Results[0].Type)
	assert.Equal(t, search.EntityPost, out.Results[1].Type)
	assert.Equal(t, search.EntityEvent, out.Results[2].Type)
	for _, r := range out.Results {
		assert.Equal(t, 60, r.RelevanceScore, "result %s/%d", r.Type, r.ID)
	}

	assert.Equal(t, "Tango Teacher", out.Results[0].Title)
	assert.Equal(t, "By Tango Teacher", out.Results[1].Description)
	assert.Equal(t, search.EntityTypes, out.Filters.Types)
}

func TestSearch_Projection(t *testing.T) {
	repo := newFakeRepo()
	long := "tango " + strings.Repeat("x", 150)
	repo.users = []model.User{{ID: 1, Username: "tangolover"}}
	repo.posts = []model.Post{{ID: 2, Content: long}}
	repo.groups = []model.Group{{ID: 3, Name: "Tango Berlin", Type: "community", MemberCount: 12}}
	uc := newTestUseCase(repo, nil, DefaultConfig())

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tango"})
	uc.tracking.Wait()
	require.NoError(t, err)

	byType := map[search.EntityType]search.SearchResult{}
	for _, r := range out.Results {
		byType[r.Type] = r
	}

	assert.Equal(t, "tangolover", byType[search.EntityUser].Title)
	assert.Equal(t, 80, byType[search.EntityUser].RelevanceScore)

	post := byType[search.EntityPost]
	assert.Equal(t, long[:100]+"...", post.Title)
	assert.Empty(t, post.Description)

	assert.Equal(t, "community • 12 members", byType[search.EntityGroup].Description)
	assert.Equal(t, 12, byType[search.EntityGroup].Metadata["memberCount"])
}

func TestSearch_Validation(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input search.SearchInput
		want  error
	}{
		{"too short", search.SearchInput{Query: " a "}, search.ErrQueryTooShort},
		{"one multi-byte character", search.SearchInput{Query: "é"}, search.ErrQueryTooShort},
		{"blank", search.SearchInput{Query: "   "}, search.ErrQueryTooShort},
		{"too long", search.SearchInput{Query: strings.Repeat("a", 501)}, search.ErrQueryTooLong},
		{"unknown type", search.SearchInput{Query: "tango", Types: []string{"user", "venue"}}, search.ErrUnknownEntityType},
		{"limit too big", search.SearchInput{Query: "tango", Limit: 51}, search.ErrInvalidPagination},
		{"negative limit", search.SearchInput{Query: "tango", Limit: -1}, search.ErrInvalidPagination},
		{"negative offset", search.SearchInput{Query: "tango", Offset: -1}, search.ErrInvalidPagination},
		{"inverted dates", search.SearchInput{Query: "tango", DateFrom: &from, DateTo: &to}, search.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := newTestUseCase(repo, nil, DefaultConfig())

			_, err := uc.Search(context.Background(), model.Scope{UserID: "1"}, tt.input)
			uc.tracking.Wait()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, search.ErrInvalidQuery)
			assert.Zero(t, repo.callCount(), "no store call before validation passes")
		})
	}
}

func TestSearch_TypeFilter(t *testing.T) {
	repo := tangoRepo()
	uc := newTestUseCase(repo, nil, DefaultConfig())

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{
		Query: "tango",
		Types: []string{"event", "USER", "event"},
	})
	uc.tracking.Wait()
	require.NoError(t, err)

	assert.Equal(t, []search.EntityType{search.EntityUser, search.EntityEvent}, out.Filters.Types)
	assert.Len(t, out.Results, 2)
	assert.False(t, repo.called("SearchPosts"))
	assert.False(t, repo.called("SearchGroups"))
	assert.False(t, repo.called("SearchMemories"))
}

func TestSearch_EventFilters(t *testing.T) {
	repo := tangoRepo()
	uc := newTestUseCase(repo, nil, DefaultConfig())
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{
		Query:    "tango",
		DateFrom: &from,
		Location: " Buenos_Aires ",
		Limit:    7,
	})
	uc.tracking.Wait()
	require.NoError(t, err)

	assert.Equal(t, `%tango%`, repo.lastEvents.Pattern)
	assert.Equal(t, 7, repo.lastEvents.Limit)
	assert.Equal(t, &from, repo.lastEvents.DateFrom)
	assert.Nil(t, repo.lastEvents.DateTo)
	assert.Equal(t, `%Buenos\_Aires%`, repo.lastEvents.LocationPattern)
}

func TestSearch_Pagination(t *testing.T) {
	uc := newTestUseCase(tangoRepo(), nil, DefaultConfig())
	ctx := context.Background()

	first, err := uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "tango", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, first.Results, 2)
	assert.Equal(t, 3, first.Total)
	assert.True(t, first.HasMore)

	second, err := uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "tango", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, second.Results, 1)
	assert.Equal(t, int64(3), second.Results[0].ID)
	assert.Equal(t, 3, second.Total)
	assert.False(t, second.HasMore)

	past, err := uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "tango", Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, past.Results)
	assert.Equal(t, 3, past.Total)
	assert.False(t, past.HasMore)

	uc.tracking.Wait()
}

func TestSearch_MemoryVisibility(t *testing.T) {
	repo := newFakeRepo()
	repo.memories = []model.Memory{
		{ID: 10, UserID: 7, Content: "my tango diary", IsPrivate: true},
		{ID: 11, UserID: 8, Content: "tango marathon photos"},
	}
	uc := newTestUseCase(repo, nil, DefaultConfig())
	input := search.SearchInput{Query: "tango", Types: []string{"memory"}}

	ids := func(sc model.Scope) []int64 {
		out, err := uc.Search(context.Background(), sc, input)
		require.NoError(t, err)
		var got []int64
		for _, r := range out.Results {
			got = append(got, r.ID)
		}
		return got
	}

	assert.ElementsMatch(t, []int64{10, 11}, ids(model.Scope{UserID: "7"}))
	assert.Equal(t, []int64{11}, ids(model.Scope{UserID: "8"}))
	assert.Equal(t, []int64{11}, ids(model.Scope{}))
	assert.Equal(t, []int64{11}, ids(model.Scope{UserID: "not-a-number"}))
	assert.Nil(t, repo.lastMemory.ViewerID)

	uc.tracking.Wait()
}

func TestSearch_Idempotent(t *testing.T) {
	uc := newTestUseCase(tangoRepo(), nil, DefaultConfig())
	input := search.SearchInput{Query: "Tango", Limit: 20}

	a, err := uc.Search(context.Background(), model.Scope{}, input)
	require.NoError(t, err)
	b, err := uc.Search(context.Background(), model.Scope{}, input)
	require.NoError(t, err)
	uc.tracking.Wait()

	assert.Equal(t, a.Results, b.Results)
	assert.Equal(t, a.Total, b.Total)
}

func TestSearch_LookupFailureAborts(t *testing.T) {
	repo := tangoRepo()
	repo.errs["SearchPosts"] = errors.New("connection reset")
	uc := newTestUseCase(repo, nil, DefaultConfig())

	_, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tango"})
	uc.tracking.Wait()

	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrBackend)
	assert.NotErrorIs(t, err, search.ErrInvalidQuery)
}

func TestSearch_LookupFailureIsolated(t *testing.T) {
	repo := tangoRepo()
	repo.errs["SearchPosts"] = errors.New("connection reset")
	repo.errs["SearchGroups"] = errors.New("relation does not exist")
	cfg := DefaultConfig()
	cfg.IsolateFailures = true
	uc := newTestUseCase(repo, nil, cfg)

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tango"})
	uc.tracking.Wait()
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []string{"post results unavailable", "group results unavailable"}, out.Warnings)
}

func TestSearch_CancelledRequestAbortsWhenIsolated(t *testing.T) {
	repo := tangoRepo()
	repo.block["SearchEvents"] = true
	cfg := DefaultConfig()
	cfg.IsolateFailures = true
	uc := newTestUseCase(repo, nil, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	out, err := uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "tango"})
	uc.tracking.Wait()

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.Warnings)
}

func TestSearch_LookupTimeoutIsEmpty(t *testing.T) {
	repo := tangoRepo()
	repo.block["SearchEvents"] = true
	cfg := DefaultConfig()
	cfg.LookupTimeout = 20 * time.Millisecond
	uc := newTestUseCase(repo, nil, cfg)

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tango"})
	uc.tracking.Wait()
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total)
	assert.Equal(t, []string{"event results unavailable"}, out.Warnings)
}

func TestSearch_Tracking(t *testing.T) {
	repo := tangoRepo()
	uc := newTestUseCase(repo, nil, DefaultConfig())

	_, err := uc.Search(context.Background(), model.Scope{UserID: "42"}, search.SearchInput{Query: "  Tango  "})
	require.NoError(t, err)
	_, err = uc.Search(context.Background(), model.Scope{}, search.SearchInput{Query: "tango"})
	require.NoError(t, err)
	uc.tracking.Wait()

	require.Len(t, repo.increments, 2)
	for _, inc := range repo.increments {
		assert.Equal(t, "tango", inc.Query)
		assert.Equal(t, search.DefaultCategory, inc.Category)
		assert.Equal(t, fixedNow, inc.SearchedAt)
	}

	require.Len(t, repo.history, 1)
	assert.Equal(t, int64(42), repo.history[0].UserID)
	assert.Equal(t, "tango", repo.history[0].Query)
}

func TestSearch_TrackingFailureIsSwallowed(t *testing.T) {
	repo := tangoRepo()
	repo.errs["IncrementTrending"] = errors.New("deadlock detected")
	repo.errs["AppendHistory"] = errors.New("disk full")
	uc := newTestUseCase(repo, nil, DefaultConfig())

	out, err := uc.Search(context.Background(), model.Scope{UserID: "42"}, search.SearchInput{Query: "tango"})
	uc.tracking.Wait()

	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.True(t, repo.called("AppendHistory"))
}

func TestSearch_TrackingOutlivesRequest(t *testing.T) {
	repo := tangoRepo()
	uc := newTestUseCase(repo, nil, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())

	_, err := uc.Search(ctx, model.Scope{}, search.SearchInput{Query: "tango"})
	require.NoError(t, err)
	cancel()
	uc.tracking.Wait()

	assert.Len(t, repo.increments, 1)
}
