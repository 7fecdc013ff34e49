package idx_test

import (
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEqual(t, idx.Zero, id)
	require.Len(t, id.String(), 26)

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
	}
}

// IDs sort by the time they were stamped with.
func TestNewAtSortsByTime(t *testing.T) {
	earlier := idx.NewAt(time.Unix(1700000000, 0).UTC())
	later := idx.NewAt(time.Unix(1700000001, 0).UTC())
	require.Less(t, earlier.String(), later.String())
}

// IDs generated concurrently inside the same millisecond never collide.
func TestConcurrentMonotonic(t *testing.T) {
	const n = 200
	tm := time.Unix(1700000000, 0).UTC()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make([]string, 0, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := idx.NewAt(tm)
			mu.Lock()
			ids = append(ids, id.String())
			mu.Unlock()
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
