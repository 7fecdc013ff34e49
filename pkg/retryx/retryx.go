package retryx

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds how an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first one.
	MaxAttempts int

	// BaseDelay is the delay before the second attempt; it doubles after that.
	BaseDelay time.Duration

	// MaxDelay caps a single backoff sleep.
	MaxDelay time.Duration

	// MaxJitter is the upper bound of the random delay added to each backoff.
	MaxJitter time.Duration

	// AttemptTimeout bounds a single attempt. Zero means the attempt only
	// inherits the parent context deadline.
	AttemptTimeout time.Duration

	// Retryable reports whether err should be retried. Defaults to IsTransient.
	Retryable func(error) bool

	// OnRetry is called before sleeping ahead of the next attempt.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultPolicy returns the policy used by database-touching operations.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    4,
		BaseDelay:      50 * time.Millisecond,
		MaxDelay:       2 * time.Second,
		MaxJitter:      50 * time.Millisecond,
		AttemptTimeout: 2 * time.Second,
	}
}

// IsTransient reports whether any error in err's chain declares itself
// transient through a Transient() bool method.
func IsTransient(err error) bool {
	var t interface{ Transient() bool }
	if errors.As(err, &t) {
		return t.Transient()
	}
	return false
}

// Backoff returns the sleep before attempt+1, where attempt counts from 1:
// min(BaseDelay * 2^(attempt-1) + jitter, MaxDelay).
func Backoff(p Policy, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			delay = p.MaxDelay
			break
		}
	}

	if p.MaxJitter > 0 {
		delay += rand.N(p.MaxJitter)
	}

	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// Do runs op until it succeeds, fails with a non-retryable error, or the
// attempts run out. The last error is returned as-is.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	_, err := DoValue(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsTransient
	}

	var (
		v       T
		lastErr error
		attempt int
	)

	operation := func() error {
		attempt++
		res, timedOut, err := runAttempt(ctx, p.AttemptTimeout, op)
		if err == nil {
			v = res
			return nil
		}
		lastErr = err

		// An attempt that hit its own deadline is retried as long as the
		// caller is still waiting.
		if !timedOut && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, delay)
		}
	}

	b := backoff.WithContext(&policyBackOff{policy: p}, ctx)
	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		var zero T
		// backoff reports cancellation as ctx.Err(); callers get the
		// operation's own error instead.
		if lastErr != nil {
			return zero, lastErr
		}
		return zero, err
	}
	return v, nil
}

// policyBackOff adapts a Policy to backoff.BackOff, stopping once
// MaxAttempts tries have been made.
type policyBackOff struct {
	policy Policy
	failed int
}

func (b *policyBackOff) NextBackOff() time.Duration {
	b.failed++
	if b.failed >= max(b.policy.MaxAttempts, 1) {
		return backoff.Stop
	}
	return Backoff(b.policy, b.failed)
}

func (b *policyBackOff) Reset() { b.failed = 0 }

func runAttempt[T any](
	ctx context.Context,
	timeout time.Duration,
	op func(ctx context.Context) (T, error),
) (T, bool, error) {
	if timeout <= 0 {
		v, err := op(ctx)
		return v, false, err
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := op(attemptCtx)
	timedOut := err != nil &&
		errors.Is(attemptCtx.Err(), context.DeadlineExceeded) &&
		ctx.Err() == nil
	return v, timedOut, err
}
