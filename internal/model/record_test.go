package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{name: "plain text", content: "buy milk", want: "buy milk"},
		{name: "trims whitespace", content: "  call mom \n", want: "call mom"},
		{name: "empty", content: "", wantErr: ErrEmptyContent},
		{name: "only spaces", content: "   \t", wantErr: ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.content, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Content)
			assert.True(t, r.CreateTime.Equal(now))
			assert.Nil(t, r.CheckTime)
			assert.False(t, r.Checked())
		})
	}
}

func TestCheck(t *testing.T) {
	created := time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)
	r, err := New("write report", created)
	require.NoError(t, err)

	first := created.Add(time.Hour)
	require.NoError(t, r.Check(first))
	require.True(t, r.Checked())
	assert.True(t, r.CheckTime.Equal(first))

	// A second check is rejected and never moves the timestamp.
	err = r.Check(first.Add(time.Hour))
	require.ErrorIs(t, err, ErrAlreadyChecked)
	assert.True(t, r.CheckTime.Equal(first))

	err = r.Check(created)
	require.ErrorIs(t, err, ErrAlreadyChecked)
	assert.True(t, r.CheckTime.Equal(first))
}

func TestCheckClampsToCreateTime(t *testing.T) {
	created := time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)
	r, err := New("skewed clock", created)
	require.NoError(t, err)

	require.NoError(t, r.Check(created.Add(-time.Minute)))
	assert.True(t, r.CheckTime.Equal(created))
}
