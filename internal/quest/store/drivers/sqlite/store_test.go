package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/catalog"
	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/internal/quest/store/drivers/sqlite"
	"github.com/aussiebroadwan/questboard/pkg/idx"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, wallet string, at time.Time) domain.User {
	t.Helper()

	u := domain.User{
		ID:            idx.NewAt(at).String(),
		WalletAddress: wallet,
		RegisteredAt:  at,
		LastActiveAt:  at,
		UpdatedAt:     at,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	u := seedUser(t, s, "0xabc", now)

	t.Run("lookup by id and wallet", func(t *testing.T) {
		byID, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "0xabc", byID.WalletAddress)
		require.Nil(t, byID.Username)
		require.True(t, now.Equal(byID.RegisteredAt))

		byWallet, err := s.Users().GetUserByWallet(ctx, "0xabc")
		require.NoError(t, err)
		require.Equal(t, u.ID, byWallet.ID)

		_, err = s.Users().GetUserByWallet(ctx, "0xmissing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate wallet", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		err := s.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("touch keeps first metadata", func(t *testing.T) {
		later := now.Add(time.Hour)
		require.NoError(t, s.Users().TouchLastActive(ctx, u.ID, domain.UserMeta{Browser: "firefox"}, later))
		require.NoError(t, s.Users().TouchLastActive(ctx, u.ID, domain.UserMeta{Browser: "chrome", ReferralSource: "x"}, later))

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "firefox", got.Browser)
		require.Equal(t, "x", got.ReferralSource)
		require.True(t, later.Equal(got.LastActiveAt))

		err = s.Users().TouchLastActive(ctx, "nope", domain.UserMeta{}, later)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("username uniqueness", func(t *testing.T) {
		other := seedUser(t, s, "0xdef", now)
		name := "alice"
		require.NoError(t, s.Users().UpdateUsername(ctx, u.ID, &name, now))

		err := s.Users().UpdateUsername(ctx, other.ID, &name, now)
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		require.NoError(t, s.Users().UpdateUsername(ctx, u.ID, nil, now))
		require.NoError(t, s.Users().UpdateUsername(ctx, other.ID, &name, now))
	})

	t.Run("add xp checks version", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)

		total, err := s.Users().AddXP(ctx, u.ID, got.Version, 150, now)
		require.NoError(t, err)
		require.Equal(t, 150, total)

		_, err = s.Users().AddXP(ctx, u.ID, got.Version, 150, now)
		require.ErrorIs(t, err, store.ErrConflict)
		require.True(t, retryx.IsTransient(err))

		_, err = s.Users().AddXP(ctx, "nope", 0, 1, now)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Users().AddXP(ctx, u.ID, got.Version+1, -1000, now)
		require.Error(t, err, "total_xp can never go negative")
	})
}

func TestLeaderboardAndStats(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := seedUser(t, s, "0xa", base)
	b := seedUser(t, s, "0xb", base.Add(time.Second))
	c := seedUser(t, s, "0xc", base.Add(2*time.Second))

	_, err := s.Users().AddXP(ctx, a.ID, 0, 100, base)
	require.NoError(t, err)
	_, err = s.Users().AddXP(ctx, b.ID, 0, 300, base)
	require.NoError(t, err)
	_, err = s.Users().AddXP(ctx, c.ID, 0, 100, base)
	require.NoError(t, err)

	require.NoError(t, s.Completions().CreateCompletion(ctx, domain.CompletedQuest{
		ID: idx.New().String(), UserID: b.ID, QuestID: 5, XPEarned: 300, CompletedAt: base,
	}))

	entries, err := s.Users().Leaderboard(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "0xb", entries[0].WalletAddress)
	require.Equal(t, 1, entries[0].CompletedQuests)
	require.Equal(t, domain.AnonymousName, entries[0].Username)
	// Ties break on registration order.
	require.Equal(t, "0xa", entries[1].WalletAddress)
	require.Equal(t, "0xc", entries[2].WalletAddress)

	page, err := s.Users().Leaderboard(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, 3, page[0].Rank)

	stats, err := s.Users().Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Stats{TotalUsers: 3, TotalXP: 500, TotalQuestsCompleted: 1}, stats)

	n, err := s.Users().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestCompletionsAndAchievements(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := seedUser(t, s, "0xabc", now)

	c := domain.CompletedQuest{
		ID: idx.New().String(), UserID: u.ID, QuestID: 1, XPEarned: 100,
		TransactionHash: "0xhash", BlockchainVerified: true, CompletedAt: now,
	}
	require.NoError(t, s.Completions().CreateCompletion(ctx, c))

	dup := c
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Completions().CreateCompletion(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Completions().GetByUserQuest(ctx, u.ID, 1)
	require.NoError(t, err)
	require.True(t, got.BlockchainVerified)
	require.Equal(t, "0xhash", got.TransactionHash)

	_, err = s.Completions().GetByUserQuest(ctx, u.ID, 2)
	require.ErrorIs(t, err, store.ErrNotFound)

	recent, err := s.Completions().ListRecent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "0xabc", recent[0].WalletAddress)

	inserted, err := s.Achievements().Unlock(ctx, domain.Achievement{ID: 1, UserID: u.ID, UnlockedAt: now})
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = s.Achievements().Unlock(ctx, domain.Achievement{ID: 1, UserID: u.ID, UnlockedAt: now})
	require.NoError(t, err)
	require.False(t, inserted)

	n, err := s.Achievements().CountByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := seedUser(t, s, "0xabc", now)

	q, ok := catalog.Lookup(1)
	require.True(t, ok)

	p := domain.NewProgress(idx.New().String(), u.ID, q, now)
	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Progress().CreateProgress(ctx, p)
	}))

	dup := domain.NewProgress(idx.New().String(), u.ID, q, now)
	require.ErrorIs(t, s.Progress().CreateProgress(ctx, dup), store.ErrAlreadyExists)

	got, err := s.Progress().GetProgress(ctx, u.ID, 1)
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, got.Status)
	require.Len(t, got.Steps, len(q.Steps))
	require.Equal(t, len(q.Steps), got.PendingSteps())

	require.NoError(t, s.Progress().SetStep(ctx, p.ID, q.Steps[0].ID, true, now))
	require.ErrorIs(t, s.Progress().SetStep(ctx, p.ID, 999, true, now), store.ErrNotFound)

	got, err = s.Progress().GetProgress(ctx, u.ID, 1)
	require.NoError(t, err)
	require.True(t, got.Steps[0].Completed)
	require.NotNil(t, got.Steps[0].CompletedAt)

	active, err := s.Progress().ListActiveByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, s.Completions().CreateCompletion(ctx, domain.CompletedQuest{
		ID: idx.New().String(), UserID: u.ID, QuestID: 1, XPEarned: 100, CompletedAt: now,
	}))
	unreconciled, err := s.Completions().ListUnreconciled(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, unreconciled, 1)

	require.NoError(t, s.Progress().MarkCompleted(ctx, u.ID, 1, "0xhash", now))
	require.NoError(t, s.Progress().MarkCompleted(ctx, u.ID, 1, "0xhash", now))
	require.ErrorIs(t, s.Progress().MarkCompleted(ctx, u.ID, 2, "", now), store.ErrNotFound)

	// Completed is terminal.
	require.NoError(t, s.Progress().UpdateStatus(ctx, p.ID, domain.StatusInProgress, now))
	got, err = s.Progress().GetProgress(ctx, u.ID, 1)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)
	require.Equal(t, "0xhash", got.TransactionHash)

	require.ErrorIs(t, s.Progress().UpdateStatus(ctx, "missing", domain.StatusInProgress, now), store.ErrNotFound)

	unreconciled, err = s.Completions().ListUnreconciled(ctx, "", 10)
	require.NoError(t, err)
	require.Empty(t, unreconciled)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	now := time.Now().UTC()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{
			ID: idx.New().String(), WalletAddress: "0xtx",
			RegisteredAt: now, LastActiveAt: now, UpdatedAt: now,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByWallet(ctx, "0xtx")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestNestedTxIsRejected(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)
}

// Two writers racing on a file database both commit; immediate transactions
// queue behind the busy timeout instead of failing.
func TestConcurrentWritersOnFile(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "quest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	u := seedUser(t, s, "0xabc", time.Now().UTC())

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- retryx.Do(ctx, retryx.DefaultPolicy(), func(ctx context.Context) error {
				return s.WithTx(ctx, func(tx store.Tx) error {
					cur, err := tx.Users().GetUserByID(ctx, u.ID)
					if err != nil {
						return err
					}
					_, err = tx.Users().AddXP(ctx, u.ID, cur.Version, 10, time.Now().UTC())
					return err
				})
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, writers*10, got.TotalXP)
	require.EqualValues(t, writers, got.Version)
}
