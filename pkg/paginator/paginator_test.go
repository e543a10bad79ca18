package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetQuery_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		in      OffsetQuery
		want    OffsetQuery
		wantErr error
	}{
		{name: "defaults limit", in: OffsetQuery{}, want: OffsetQuery{Limit: DefaultLimit}},
		{name: "keeps valid", in: OffsetQuery{Limit: 5, Offset: 10}, want: OffsetQuery{Limit: 5, Offset: 10}},
		{name: "limit too large", in: OffsetQuery{Limit: 51}, wantErr: ErrLimitOutOfRange},
		{name: "negative limit", in: OffsetQuery{Limit: -1}, wantErr: ErrLimitOutOfRange},
		{name: "negative offset", in: OffsetQuery{Limit: 1, Offset: -1}, wantErr: ErrNegativeOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			err := q.Normalize(DefaultLimit, MaxLimit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestOffsetQuery_Window(t *testing.T) {
	q := OffsetQuery{Limit: 2, Offset: 1}
	start, end := q.Window(5)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	start, end = OffsetQuery{Limit: 2, Offset: 9}.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestNewPagination_HasMore(t *testing.T) {
	q := OffsetQuery{Limit: 3}
	assert.True(t, NewPagination(q, 3).HasMore)
	assert.False(t, NewPagination(q, 2).HasMore)
	assert.False(t, NewPagination(q, 0).HasMore)
}
