package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterSetSweepsIdleBuckets(t *testing.T) {
	now := time.Unix(1700000000, 0)
	set := newLimiterSet(RateLimitConfig{Requests: 10, Window: time.Minute, Burst: 10})
	set.now = func() time.Time { return now }
	set.lastSweep = now

	ok, _ := set.reserve("a")
	require.True(t, ok)
	ok, _ = set.reserve("b")
	require.True(t, ok)
	require.Equal(t, 2, set.size())

	// "b" stays warm, "a" goes idle past the TTL.
	now = now.Add(limiterIdleTTL - time.Second)
	_, _ = set.reserve("b")
	now = now.Add(2 * time.Minute)
	_, _ = set.reserve("c")

	require.Equal(t, 2, set.size())
	_, kept := set.buckets["a"]
	require.False(t, kept)
}
