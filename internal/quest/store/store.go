package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// transientError marks failures worth retrying. retryx.IsTransient picks
// them up through the Transient method.
type transientError string

func (e transientError) Error() string   { return string(e) }
func (e transientError) Transient() bool { return true }

var (
	// ErrConflict means an optimistic version check lost to a concurrent
	// writer.
	ErrConflict error = transientError("store: version conflict")

	// ErrUnavailable wraps busy, locked and connection level failures.
	ErrUnavailable error = transientError("store: unavailable")
)

// Store is the root data access interface. Repositories hang off it so a
// transaction can hand out the same repositories bound to itself.
type Store interface {
	Users() Users
	Completions() Completions
	Achievements() Achievements
	Progress() Progress

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	// Inside fn only the repositories of tx may be used.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByWallet(ctx context.Context, wallet string) (domain.User, error)

	// CreateUser fails with ErrAlreadyExists on a duplicate wallet.
	CreateUser(ctx context.Context, u domain.User) error

	// TouchLastActive sets last_active_at and fills browser and referral
	// source only where they are still empty.
	TouchLastActive(ctx context.Context, id string, meta domain.UserMeta, at time.Time) error

	// UpdateUsername sets or clears (nil) the username. A name held by
	// someone else fails with ErrAlreadyExists.
	UpdateUsername(ctx context.Context, id string, username *string, at time.Time) error

	// AddXP increments total_xp when the stored version still equals
	// expectedVersion, and returns the new total. A moved version yields
	// ErrConflict.
	AddXP(ctx context.Context, id string, expectedVersion int64, delta int, at time.Time) (int, error)

	// Leaderboard orders by total_xp desc, registered_at asc.
	Leaderboard(ctx context.Context, limit, offset int) ([]domain.LeaderboardEntry, error)

	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type Completions interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CompletedQuest, error)
	GetByUserQuest(ctx context.Context, userID string, questID int) (domain.CompletedQuest, error)

	// CreateCompletion fails with ErrAlreadyExists when (user, quest) is
	// already recorded.
	CreateCompletion(ctx context.Context, c domain.CompletedQuest) error

	CountByUser(ctx context.Context, userID string) (int, error)
	ListRecent(ctx context.Context, limit int) ([]domain.RecentCompletion, error)

	// ListUnreconciled returns completions whose progress row exists but is
	// not yet marked completed, ordered by id and starting after afterID.
	// An empty afterID starts from the beginning.
	ListUnreconciled(ctx context.Context, afterID string, limit int) ([]domain.CompletedQuest, error)
}

type Achievements interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error)

	// Unlock is a no-op for an existing (user, achievement) pair. It
	// reports whether a row was inserted.
	Unlock(ctx context.Context, a domain.Achievement) (bool, error)

	CountByUser(ctx context.Context, userID string) (int, error)
}

type Progress interface {
	// GetProgress returns the progress with its steps ordered by step id.
	GetProgress(ctx context.Context, userID string, questID int) (domain.Progress, error)

	// CreateProgress inserts the row and its steps. ErrAlreadyExists on a
	// duplicate (user, quest).
	CreateProgress(ctx context.Context, p domain.Progress) error

	// SetStep flips one step. ErrNotFound when the step row is missing.
	SetStep(ctx context.Context, progressID string, stepID int, completed bool, at time.Time) error

	// UpdateStatus never rewrites a completed progress.
	UpdateStatus(ctx context.Context, progressID string, status domain.ProgressStatus, at time.Time) error

	// MarkCompleted is idempotent.
	MarkCompleted(ctx context.Context, userID string, questID int, txHash string, at time.Time) error

	ListActiveByUser(ctx context.Context, userID string) ([]domain.Progress, error)
}
