package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerCompletesImmediately(t *testing.T) {
	p := NewPoller[int](&PollConfig{Interval: 5 * time.Millisecond})

	result, err := p.PollUntilComplete(context.Background(),
		func(context.Context) (int, error) { return 42, nil },
		func(v int) bool { return v == 42 },
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestPollerRetriesUntilComplete(t *testing.T) {
	calls := 0
	p := NewPoller[int](&PollConfig{Interval: 5 * time.Millisecond})

	result, err := p.PollUntilComplete(context.Background(),
		func(context.Context) (int, error) {
			calls++
			return calls, nil
		},
		func(v int) bool { return v >= 3 },
		nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 3, result)
	assert.Equal(t, 3, calls)
}

func TestPollerStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPoller[int](&PollConfig{Interval: 5 * time.Millisecond})

	_, err := p.PollUntilComplete(context.Background(),
		func(context.Context) (int, error) { return 0, boom },
		func(int) bool { return false },
		nil,
	)

	assert.ErrorIs(t, err, boom)
}

func TestPollerTimeout(t *testing.T) {
	p := NewPoller[int](&PollConfig{
		Interval: 5 * time.Millisecond,
		Timeout:  30 * time.Millisecond,
	})

	_, err := p.PollUntilComplete(context.Background(),
		func(context.Context) (int, error) { return 0, nil },
		func(int) bool { return false },
		nil,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPollerOnUpdate(t *testing.T) {
	var seen []int
	calls := 0
	p := NewPoller[int](&PollConfig{Interval: 5 * time.Millisecond})

	_, err := p.PollUntilComplete(context.Background(),
		func(context.Context) (int, error) {
			calls++
			return calls, nil
		},
		func(v int) bool { return v >= 2 },
		func(v int) { seen = append(seen, v) },
	)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestFormatDurationLong(t *testing.T) {
	assert.Equal(t, "250ms", FormatDurationLong(250*time.Millisecond))
	assert.Equal(t, "5s", FormatDurationLong(5*time.Second))
	assert.Equal(t, "2m 30s", FormatDurationLong(150*time.Second))
	assert.Equal(t, "1h 15m", FormatDurationLong(75*time.Minute))
}
