package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"search-srv/internal/model"
	"search-srv/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClicks struct {
	mu     sync.Mutex
	events []search.ClickEvent
	err    error
}

func (f *fakeClicks) PublishClick(_ context.Context, event search.ClickEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func TestTrack_Publishes(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), nil, DefaultConfig())
	clicks := &fakeClicks{}
	uc.clicks = clicks

	err := uc.Track(context.Background(), model.Scope{UserID: "42"}, search.TrackInput{
		Query:      " Tango ",
		ResultID:   "17",
		ResultType: "event",
		Position:   2,
	})
	require.NoError(t, err)

	require.Len(t, clicks.events, 1)
	ev := clicks.events[0]
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "tango", ev.Query)
	assert.Equal(t, "17", ev.ResultID)
	assert.Equal(t, search.EntityEvent, ev.ResultType)
	assert.Equal(t, 2, ev.Position)
	assert.Equal(t, "42", ev.UserID)
	assert.Equal(t, fixedNow, ev.ClickedAt)
}

func TestTrack_PublishFailureIsSwallowed(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), nil, DefaultConfig())
	uc.clicks = &fakeClicks{err: errors.New("broker unavailable")}

	err := uc.Track(context.Background(), model.Scope{}, search.TrackInput{
		Query: "tango", ResultID: "1", ResultType: "user",
	})
	assert.NoError(t, err)
}

func TestTrack_NoPublisher(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), nil, DefaultConfig())

	err := uc.Track(context.Background(), model.Scope{}, search.TrackInput{
		Query: "tango", ResultID: "1", ResultType: "post",
	})
	assert.NoError(t, err)
}

func TestTrack_Validation(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), nil, DefaultConfig())

	tests := []struct {
		name  string
		input search.TrackInput
		want  error
	}{
		{"missing query", search.TrackInput{ResultID: "1", ResultType: "user"}, search.ErrInvalidTrackInput},
		{"missing result id", search.TrackInput{Query: "tango", ResultType: "user"}, search.ErrInvalidTrackInput},
		{"negative position", search.TrackInput{Query: "tango", ResultID: "1", ResultType: "user", Position: -1}, search.ErrInvalidTrackInput},
		{"unknown type", search.TrackInput{Query: "tango", ResultID: "1", ResultType: "venue"}, search.ErrUnknownEntityType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Track(context.Background(), model.Scope{}, tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, search.ErrInvalidQuery)
		})
	}
}
