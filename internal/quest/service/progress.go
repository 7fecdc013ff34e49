package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/catalog"
	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/idx"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"
)

type ProgressService struct {
	Store    store.Store
	Identity *IdentityService
	Retry    retryx.Policy
}

// ProgressSummary is a user's totals plus every quest still underway.
type ProgressSummary struct {
	WalletAddress   string
	TotalXP         int
	CompletedQuests []domain.CompletedQuest
	ActiveProgress  []domain.Progress
}

// QuestStatus answers "has this wallet completed this quest".
type QuestStatus struct {
	Completed     bool
	WalletAddress string
	QuestID       int
	XPEarned      int
}

// Start begins a quest for wallet, registering the user if needed. Starting
// an already started quest returns the existing progress unchanged.
func (s *ProgressService) Start(ctx context.Context, wallet string, questID int) (domain.Progress, error) {
	if questID <= 0 {
		return domain.Progress{}, ErrInvalidQuest
	}
	q, ok := catalog.Lookup(questID)
	if !ok {
		return domain.Progress{}, ErrUnknownQuest
	}

	user, err := s.Identity.ResolveOrCreate(ctx, wallet)
	if err != nil {
		return domain.Progress{}, err
	}

	p, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.Progress, error) {
		var out domain.Progress
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			// 1. Already started
			existing, err := tx.Progress().GetProgress(ctx, user.ID, questID)
			if err == nil {
				out = existing
				return nil
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			// 2. Already completed without a progress row
			if _, err := tx.Completions().GetByUserQuest(ctx, user.ID, questID); err == nil {
				return ErrAlreadyCompleted
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			// 3. Fresh progress with every step pending
			now := time.Now().UTC()
			out = domain.NewProgress(idx.NewAt(now).String(), user.ID, q, now)
			return tx.Progress().CreateProgress(ctx, out)
		})
		return out, err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return s.getProgress(ctx, user.ID, questID)
	}
	if err != nil {
		return domain.Progress{}, err
	}

	slogx.FromContext(ctx).Debug("quest started",
		slog.String("user_id", user.ID),
		slog.Int("quest_id", questID),
		slog.String("status", string(p.Status)),
	)
	return p, nil
}

// UpdateStep checks or unchecks one step and recomputes the status. The
// progress must already exist and stepID must belong to the quest.
func (s *ProgressService) UpdateStep(ctx context.Context, wallet string, questID, stepID int, completed bool) (domain.Progress, error) {
	wallet = domain.NormalizeWallet(wallet)
	if wallet == "" {
		return domain.Progress{}, ErrInvalidWallet
	}
	if questID <= 0 {
		return domain.Progress{}, ErrInvalidQuest
	}
	q, ok := catalog.Lookup(questID)
	if !ok {
		return domain.Progress{}, ErrUnknownQuest
	}
	if !q.HasStep(stepID) {
		return domain.Progress{}, ErrStepNotFound
	}

	return retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.Progress, error) {
		var out domain.Progress
		err := s.Store.WithTx(ctx, func(tx store.Tx) error {
			user, err := tx.Users().GetUserByWallet(ctx, wallet)
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			if err != nil {
				return err
			}

			p, err := tx.Progress().GetProgress(ctx, user.ID, questID)
			if errors.Is(err, store.ErrNotFound) {
				return ErrProgressNotFound
			}
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if err := tx.Progress().SetStep(ctx, p.ID, stepID, completed, now); err != nil {
				return err
			}

			out, err = tx.Progress().GetProgress(ctx, user.ID, questID)
			if err != nil {
				return err
			}
			next := domain.NextStatus(out.Status, out.PendingSteps())
			if next == out.Status {
				return nil
			}
			if err := tx.Progress().UpdateStatus(ctx, p.ID, next, now); err != nil {
				return err
			}

			out, err = tx.Progress().GetProgress(ctx, user.ID, questID)
			return err
		})
		return out, err
	})
}

// Get returns one progress record, repairing a missed completed mark.
func (s *ProgressService) Get(ctx context.Context, wallet string, questID int) (domain.Progress, error) {
	user, err := s.Identity.Lookup(ctx, wallet)
	if err != nil {
		return domain.Progress{}, err
	}

	p, err := s.getProgress(ctx, user.ID, questID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Progress{}, ErrProgressNotFound
	}
	if err != nil {
		return domain.Progress{}, err
	}
	if p.Status == domain.StatusCompleted {
		return p, nil
	}

	c, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.CompletedQuest, error) {
		return s.Store.Completions().GetByUserQuest(ctx, user.ID, questID)
	})
	if errors.Is(err, store.ErrNotFound) {
		return p, nil
	}
	if err != nil {
		return domain.Progress{}, err
	}
	if !s.repair(ctx, c) {
		return p, nil
	}
	return s.getProgress(ctx, user.ID, questID)
}

func (s *ProgressService) getProgress(ctx context.Context, userID string, questID int) (domain.Progress, error) {
	return retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.Progress, error) {
		return s.Store.Progress().GetProgress(ctx, userID, questID)
	})
}

// Summary lists the user's completions and active quests.
func (s *ProgressService) Summary(ctx context.Context, wallet string) (ProgressSummary, error) {
	user, err := s.Identity.Lookup(ctx, wallet)
	if err != nil {
		return ProgressSummary{}, err
	}

	var (
		completed []domain.CompletedQuest
		active    []domain.Progress
	)
	err = retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
		var err error
		if completed, err = s.Store.Completions().ListByUser(ctx, user.ID); err != nil {
			return err
		}
		active, err = s.Store.Progress().ListActiveByUser(ctx, user.ID)
		return err
	})
	if err != nil {
		return ProgressSummary{}, err
	}

	byQuest := make(map[int]domain.CompletedQuest, len(completed))
	for _, c := range completed {
		byQuest[c.QuestID] = c
	}

	// An active progress with a completion is drift; repair it and hide it.
	filtered := active[:0]
	for _, p := range active {
		if c, ok := byQuest[p.QuestID]; ok {
			s.repair(ctx, c)
			continue
		}
		filtered = append(filtered, p)
	}

	return ProgressSummary{
		WalletAddress:   user.WalletAddress,
		TotalXP:         user.TotalXP,
		CompletedQuests: completed,
		ActiveProgress:  filtered,
	}, nil
}

// Status never fails for an unknown wallet; it reports not completed.
func (s *ProgressService) Status(ctx context.Context, wallet string, questID int) (QuestStatus, error) {
	out := QuestStatus{WalletAddress: domain.NormalizeWallet(wallet), QuestID: questID}

	user, err := s.Identity.Lookup(ctx, wallet)
	if errors.Is(err, ErrUserNotFound) {
		return out, nil
	}
	if err != nil {
		return QuestStatus{}, err
	}

	c, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.CompletedQuest, error) {
		return s.Store.Completions().GetByUserQuest(ctx, user.ID, questID)
	})
	if errors.Is(err, store.ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return QuestStatus{}, err
	}

	out.Completed = true
	out.XPEarned = c.XPEarned
	return out, nil
}

// RecentCompletions is the global activity feed, newest first.
func (s *ProgressService) RecentCompletions(ctx context.Context, limit int) ([]domain.RecentCompletion, error) {
	if limit <= 0 {
		limit = 10
	}
	limit = min(limit, 50)
	return retryx.DoValue(ctx, s.Retry, func(ctx context.Context) ([]domain.RecentCompletion, error) {
		return s.Store.Completions().ListRecent(ctx, limit)
	})
}

// repair marks the progress behind c completed. Failures are logged and
// left to the reconciler.
func (s *ProgressService) repair(ctx context.Context, c domain.CompletedQuest) bool {
	err := retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
		return s.Store.Progress().MarkCompleted(ctx, c.UserID, c.QuestID, c.TransactionHash, c.CompletedAt)
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("progress drift repair failed",
			slog.String("user_id", c.UserID),
			slog.Int("quest_id", c.QuestID),
			slog.Any("error", err),
		)
		return false
	}
	slogx.FromContext(ctx).Info("progress drift repaired",
		slog.String("user_id", c.UserID),
		slog.Int("quest_id", c.QuestID),
	)
	return true
}
