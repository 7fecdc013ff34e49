package retryx_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/stretchr/testify/require"
)

type flaky string

func (f flaky) Error() string { return string(f) }
func (flaky) Transient() bool { return true }

var errFlaky error = flaky("flaky")

func fastPolicy(attempts int) retryx.Policy {
	return retryx.Policy{
		MaxAttempts: attempts,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	require.True(t, retryx.IsTransient(errFlaky))
	require.True(t, retryx.IsTransient(fmt.Errorf("wrapped: %w", errFlaky)))
	require.False(t, retryx.IsTransient(errors.New("permanent")))
	require.False(t, retryx.IsTransient(nil))
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	p := retryx.Policy{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	t.Run("doubles per attempt", func(t *testing.T) {
		require.Equal(t, 100*time.Millisecond, retryx.Backoff(p, 1))
		require.Equal(t, 200*time.Millisecond, retryx.Backoff(p, 2))
		require.Equal(t, 400*time.Millisecond, retryx.Backoff(p, 3))
	})

	t.Run("caps at max delay", func(t *testing.T) {
		require.Equal(t, time.Second, retryx.Backoff(p, 5))
		require.Equal(t, time.Second, retryx.Backoff(p, 60))
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		pj := p
		pj.MaxJitter = 50 * time.Millisecond
		for range 100 {
			d := retryx.Backoff(pj, 2)
			require.GreaterOrEqual(t, d, 200*time.Millisecond)
			require.Less(t, d, 250*time.Millisecond)
		}
	})

	t.Run("jitter never exceeds max delay", func(t *testing.T) {
		pj := p
		pj.MaxJitter = time.Second
		for range 100 {
			require.LessOrEqual(t, retryx.Backoff(pj, 4), time.Second)
		}
	})
}

func TestDo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retryx.Do(ctx, fastPolicy(3), func(context.Context) error {
			calls++
			if calls < 3 {
				return errFlaky
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		permanent := errors.New("already completed")
		calls := 0
		err := retryx.Do(ctx, fastPolicy(5), func(context.Context) error {
			calls++
			return permanent
		})
		require.Same(t, permanent, err)
		require.Equal(t, 1, calls)
	})

	t.Run("returns last error unmodified when exhausted", func(t *testing.T) {
		calls := 0
		var last error
		err := retryx.Do(ctx, fastPolicy(4), func(context.Context) error {
			calls++
			last = fmt.Errorf("attempt %d: %w", calls, errFlaky)
			return last
		})
		require.Equal(t, 4, calls)
		require.Same(t, last, err)
		require.True(t, retryx.IsTransient(err))
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		err := retryx.Do(ctx, retryx.Policy{}, func(context.Context) error {
			calls++
			return errFlaky
		})
		require.ErrorIs(t, err, errFlaky)
		require.Equal(t, 1, calls)
	})

	t.Run("custom classifier", func(t *testing.T) {
		sentinel := errors.New("busy")
		p := fastPolicy(2)
		p.Retryable = func(err error) bool { return errors.Is(err, sentinel) }

		calls := 0
		err := retryx.Do(ctx, p, func(context.Context) error {
			calls++
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)
		require.Equal(t, 2, calls)
	})

	t.Run("on retry hook sees each retry", func(t *testing.T) {
		var seen []int
		p := fastPolicy(3)
		p.OnRetry = func(attempt int, err error, delay time.Duration) {
			require.ErrorIs(t, err, errFlaky)
			require.Positive(t, delay)
			seen = append(seen, attempt)
		}
		_ = retryx.Do(ctx, p, func(context.Context) error { return errFlaky })
		require.Equal(t, []int{1, 2}, seen)
	})

	t.Run("attempt timeout is retried", func(t *testing.T) {
		p := fastPolicy(3)
		p.AttemptTimeout = 5 * time.Millisecond

		calls := 0
		err := retryx.Do(ctx, p, func(ctx context.Context) error {
			calls++
			if calls == 1 {
				<-ctx.Done()
				return ctx.Err()
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 2, calls)
	})

	t.Run("stops when parent context is cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		p := retryx.Policy{MaxAttempts: 10, BaseDelay: time.Hour, MaxDelay: time.Hour}

		calls := 0
		err := retryx.Do(cctx, p, func(context.Context) error {
			calls++
			cancel()
			return errFlaky
		})
		require.ErrorIs(t, err, errFlaky)
		require.Equal(t, 1, calls)
	})
}

func TestDoValue(t *testing.T) {
	t.Parallel()

	calls := 0
	v, err := retryx.DoValue(context.Background(), fastPolicy(3), func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errFlaky
		}
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, v)
}
