package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestDo_SucceedsOnFirstAttemptWithoutRetrying(t *testing.T) {
	calls := 0
	cfg := RetryConfig{MaxRetries: 3, InitialDelay: time.Millisecond}

	got, err := Do(context.Background(), cfg, nil, func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestDo_PersistentFailureCallsBlockExactlyMaxRetriesPlusOne(t *testing.T) {
	calls := 0
	cfg := RetryConfig{MaxRetries: 3, InitialDelay: time.Microsecond}

	_, err := Do(context.Background(), cfg, nil, func(ctx context.Context) (int, error) {
		calls++
		return 0, errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 4, calls)
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	cfg := RetryConfig{MaxRetries: 5, InitialDelay: time.Microsecond}

	got, err := Do(context.Background(), cfg, nil, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errBoom
		}
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", got)
	assert.Equal(t, 3, calls)
}

func TestDo_NonRetryablePredicateStopsImmediately(t *testing.T) {
	calls := 0
	cfg := RetryConfig{MaxRetries: 5, InitialDelay: time.Microsecond}

	_, err := Do(context.Background(), cfg, func(err error) bool { return false }, func(ctx context.Context) (int, error) {
		calls++
		return 0, errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroMaxRetriesCallsOnce(t *testing.T) {
	calls := 0
	cfg := RetryConfig{MaxRetries: 0, InitialDelay: time.Microsecond}

	_, err := Do(context.Background(), cfg, nil, func(ctx context.Context) (int, error) {
		calls++
		return 0, errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancellationAbortsDuringBackoffSleep(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 5, InitialDelay: 50 * time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, cfg, nil, func(ctx context.Context) (int, error) {
		calls++
		return 0, errBoom
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_OnRetryFiresBeforeEachRetry(t *testing.T) {
	var attempts []int
	cfg := RetryConfig{
		MaxRetries:   2,
		InitialDelay: time.Microsecond,
		OnRetry: func(attempt int, err error, delay time.Duration) {
			attempts = append(attempts, attempt)
		},
	}

	_, err := Do(context.Background(), cfg, nil, func(ctx context.Context) (int, error) {
		return 0, errBoom
	})

	require.Error(t, err)
	assert.Equal(t, []int{0, 1}, attempts)
}
