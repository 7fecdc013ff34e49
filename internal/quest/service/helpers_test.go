package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/internal/quest/store/drivers/sqlite"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/stretchr/testify/require"
)

func testPolicy() retryx.Policy {
	return retryx.Policy{
		MaxAttempts:    4,
		BaseDelay:      time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		AttemptTimeout: 5 * time.Second,
	}
}

type services struct {
	store      *sqlite.Store
	identity   *IdentityService
	progress   *ProgressService
	completion *CompletionService
	profile    *ProfileService
}

func newServices(t *testing.T) services {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	identity := &IdentityService{Store: s, Retry: testPolicy()}
	return services{
		store:      s,
		identity:   identity,
		progress:   &ProgressService{Store: s, Identity: identity, Retry: testPolicy()},
		completion: &CompletionService{Store: s, Retry: testPolicy()},
		profile:    &ProfileService{Store: s, Identity: identity, Retry: testPolicy()},
	}
}

// startAndFinish starts questID for wallet and checks every step.
func startAndFinish(t *testing.T, svc services, wallet string, questID int) {
	t.Helper()
	ctx := context.Background()

	p, err := svc.progress.Start(ctx, wallet, questID)
	require.NoError(t, err)
	for _, st := range p.Steps {
		_, err := svc.progress.UpdateStep(ctx, wallet, questID, st.StepID, true)
		require.NoError(t, err)
	}
}

// conflictStore makes AddXP inside a transaction lose the version check.
// With failures > 0 only the first failures transactions conflict; zero
// means every one does.
type conflictStore struct {
	store.Store
	failures int32
	attempts atomic.Int32
}

func (s *conflictStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		n := s.attempts.Add(1)
		if s.failures > 0 && n > s.failures {
			return fn(tx)
		}
		return fn(conflictTx{tx})
	})
}

// innerTx lets conflictTx embed the interface without a field named Tx
// shadowing the Tx method.
type innerTx = store.Tx

type conflictTx struct{ innerTx }

func (t conflictTx) Users() store.Users { return conflictUsers{t.innerTx.Users()} }

type conflictUsers struct{ store.Users }

func (conflictUsers) AddXP(context.Context, string, int64, int, time.Time) (int, error) {
	return 0, store.ErrConflict
}

// flakyStore fails the first completion listing with ErrUnavailable.
type flakyStore struct {
	store.Store
	calls atomic.Int32
}

func (s *flakyStore) Completions() store.Completions {
	return flakyCompletions{Completions: s.Store.Completions(), calls: &s.calls}
}

type flakyCompletions struct {
	store.Completions
	calls *atomic.Int32
}

func (c flakyCompletions) ListByUser(ctx context.Context, userID string) ([]domain.CompletedQuest, error) {
	if c.calls.Add(1) == 1 {
		return nil, store.ErrUnavailable
	}
	return c.Completions.ListByUser(ctx, userID)
}

// driftStore fails every MarkCompleted issued outside a transaction.
type driftStore struct{ store.Store }

func (s driftStore) Progress() store.Progress { return driftProgress{s.Store.Progress()} }

type driftProgress struct{ store.Progress }

func (driftProgress) MarkCompleted(context.Context, string, int, string, time.Time) error {
	return store.ErrUnavailable
}

// stuckStore fails every MarkCompleted for userID issued outside a
// transaction.
type stuckStore struct {
	store.Store
	userID string
}

func (s stuckStore) Progress() store.Progress {
	return stuckProgress{Progress: s.Store.Progress(), userID: s.userID}
}

type stuckProgress struct {
	store.Progress
	userID string
}

func (p stuckProgress) MarkCompleted(ctx context.Context, userID string, questID int, txHash string, at time.Time) error {
	if userID == p.userID {
		return store.ErrUnavailable
	}
	return p.Progress.MarkCompleted(ctx, userID, questID, txHash, at)
}
