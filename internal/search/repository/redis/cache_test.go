package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
	"search-srv/pkg/log"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	default:
		f.data[key] = fmt.Sprint(v)
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeRedis) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeRedis) Close() error               { return nil }
func (f *fakeRedis) Ping(context.Context) error { return nil }

func TestCache_Suggestions(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	repo := New(fr, log.NewNop(), Config{})

	_, err := repo.GetSuggestions(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrCacheMiss)

	require.NoError(t, repo.SaveSuggestions(ctx, "k", []string{"tango shoes", "Tatiana"}))
	assert.Equal(t, DefaultSuggestionTTL, fr.ttls["k"])

	got, err := repo.GetSuggestions(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"tango shoes", "Tatiana"}, got)
}

func TestCache_Trending(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	repo := New(fr, log.NewNop(), Config{TrendingTTL: time.Second})

	items := []model.TrendingQuery{{Query: "tango", Category: "all", SearchCount: 3}}
	require.NoError(t, repo.SaveTrending(ctx, "t", items))
	assert.Equal(t, time.Second, fr.ttls["t"])

	got, err := repo.GetTrending(ctx, "t")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].SearchCount)
}

func TestCache_CorruptEntry(t *testing.T) {
	fr := newFakeRedis()
	fr.data["bad"] = "{not json"
	repo := New(fr, log.NewNop(), Config{})

	_, err := repo.GetSuggestions(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}
