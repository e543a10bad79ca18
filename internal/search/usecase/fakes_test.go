package usecase

import (
	"context"
	"sync"
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
)

type fakeRepo struct {
	mu sync.Mutex

	users    []model.User
	posts    []model.Post
	events   []model.Event
	groups   []model.Group
	memories []model.Memory

	trendingNames []string
	userNames     []string
	groupNames    []string
	trending      []model.TrendingQuery

	// errs fails the named method
	errs  map[string]error
	block map[string]bool // wait for ctx.Done before returning

	calls      []string
	increments []repository.IncrementTrendingOptions
	history    []repository.AppendHistoryOptions
	lastEvents repository.SearchEventsOptions
	lastMemory repository.SearchMemoriesOptions
	lastList   repository.ListTrendingOptions
	prefixes   map[string]repository.PrefixOptions
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		errs:     map[string]error{},
		block:    map[string]bool{},
		prefixes: map[string]repository.PrefixOptions{},
	}
}

func (f *fakeRepo) enter(ctx context.Context, name string) error {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	err := f.errs[name]
	block := f.block[name]
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (f *fakeRepo) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func limitRows[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func (f *fakeRepo) SearchUsers(ctx context.Context, opt repository.SearchOptions) ([]model.User, error) {
	if err := f.enter(ctx, "SearchUsers"); err != nil {
		return nil, err
	}
	return limitRows(f.users, opt.Limit), nil
}

func (f *fakeRepo) SearchPosts(ctx context.Context, opt repository.SearchOptions) ([]model.Post, error) {
	if err := f.enter(ctx, "SearchPosts"); err != nil {
		return nil, err
	}
	return limitRows(f.posts, opt.Limit), nil
}

func (f *fakeRepo) SearchEvents(ctx context.Context, opt repository.SearchEventsOptions) ([]model.Event, error) {
	if err := f.enter(ctx, "SearchEvents"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastEvents = opt
	f.mu.Unlock()
	return limitRows(f.events, opt.Limit), nil
}

func (f *fakeRepo) SearchGroups(ctx context.Context, opt repository.SearchOptions) ([]model.Group, error) {
	if err := f.enter(ctx, "SearchGroups"); err != nil {
		return nil, err
	}
	return limitRows(f.groups, opt.Limit), nil
}

// SearchMemories applies the visibility rule the real query applies.
func (f *fakeRepo) SearchMemories(ctx context.Context, opt repository.SearchMemoriesOptions) ([]model.Memory, error) {
	if err := f.enter(ctx, "SearchMemories"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastMemory = opt
	f.mu.Unlock()

	var out []model.Memory
	for _, m := range f.memories {
		if !m.IsPrivate || (opt.ViewerID != nil && *opt.ViewerID == m.UserID) {
			out = append(out, m)
		}
	}
	return limitRows(out, opt.Limit), nil
}

func (f *fakeRepo) suggest(ctx context.Context, name string, src []string, opt repository.PrefixOptions) ([]string, error) {
	if err := f.enter(ctx, name); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.prefixes[name] = opt
	f.mu.Unlock()
	return limitRows(src, opt.Limit), nil
}

func (f *fakeRepo) SuggestUserNames(ctx context.Context, opt repository.PrefixOptions) ([]string, error) {
	return f.suggest(ctx, "SuggestUserNames", f.userNames, opt)
}

func (f *fakeRepo) SuggestGroupNames(ctx context.Context, opt repository.PrefixOptions) ([]string, error) {
	return f.suggest(ctx, "SuggestGroupNames", f.groupNames, opt)
}

func (f *fakeRepo) SuggestTrending(ctx context.Context, opt repository.PrefixOptions) ([]string, error) {
	return f.suggest(ctx, "SuggestTrending", f.trendingNames, opt)
}

func (f *fakeRepo) IncrementTrending(ctx context.Context, opt repository.IncrementTrendingOptions) error {
	if err := f.enter(ctx, "IncrementTrending"); err != nil {
		return err
	}
	f.mu.Lock()
	f.increments = append(f.increments, opt)
	f.mu.Unlock()
	return nil
}

func (f *fakeRepo) ListTrending(ctx context.Context, opt repository.ListTrendingOptions) ([]model.TrendingQuery, error) {
	if err := f.enter(ctx, "ListTrending"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastList = opt
	f.mu.Unlock()
	return limitRows(f.trending, opt.Limit), nil
}

func (f *fakeRepo) AppendHistory(ctx context.Context, opt repository.AppendHistoryOptions) error {
	if err := f.enter(ctx, "AppendHistory"); err != nil {
		return err
	}
	f.mu.Lock()
	f.history = append(f.history, opt)
	f.mu.Unlock()
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	suggestions map[string][]string
	trending    map[string][]model.TrendingQuery
	getErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		suggestions: map[string][]string{},
		trending:    map[string][]model.TrendingQuery{},
	}
}

func (c *fakeCache) GetSuggestions(_ context.Context, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.suggestions[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) SaveSuggestions(_ context.Context, key string, suggestions []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestions[key] = suggestions
	return nil
}

func (c *fakeCache) GetTrending(_ context.Context, key string) ([]model.TrendingQuery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.trending[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) SaveTrending(_ context.Context, key string, items []model.TrendingQuery) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trending[key] = items
	return nil
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeRepo, cache *fakeCache, cfg Config) *implUseCase {
	var cacheRepo repository.CacheRepository
	if cache != nil {
		cacheRepo = cache
	}
	uc := New(repo, cacheRepo, nil, log.NewNop(), cfg).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}
