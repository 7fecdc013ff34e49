package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/catalog"
	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/idx"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"
)

type CompleteRequest struct {
	Wallet             string
	QuestID            int
	TransactionHash    string
	BlockchainVerified bool
}

type CompletionResult struct {
	XPEarned        int
	TotalXP         int
	TransactionHash string
	CompletedAt     time.Time
	NewAchievements []domain.AchievementRule
}

// CompletionService is the only code path that awards XP.
type CompletionService struct {
	Store store.Store
	Retry retryx.Policy

	// RequireVerified rejects requests whose transaction is not flagged as
	// verified on chain.
	RequireVerified bool
}

type committed struct {
	userID string
	result CompletionResult
}

// Complete records a quest completion and credits its XP exactly once per
// (user, quest), no matter how many requests race.
func (s *CompletionService) Complete(ctx context.Context, req CompleteRequest) (CompletionResult, error) {
	wallet := domain.NormalizeWallet(req.Wallet)
	if wallet == "" {
		return CompletionResult{}, ErrInvalidWallet
	}
	if req.QuestID <= 0 {
		return CompletionResult{}, ErrInvalidQuest
	}
	if s.RequireVerified && !req.BlockchainVerified {
		return CompletionResult{}, ErrNotVerified
	}

	log := slogx.FromContext(ctx).With(
		slog.String("wallet", wallet),
		slog.Int("quest_id", req.QuestID),
	)

	policy := s.Retry
	policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		log.Warn("completion retry",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)
	}

	c, err := retryx.DoValue(ctx, policy, func(ctx context.Context) (committed, error) {
		return s.commit(ctx, wallet, req)
	})
	if err != nil {
		if isTransient(ctx, err) {
			log.Error("completion gave up", slog.Any("error", err))
			return CompletionResult{}, fmt.Errorf("%w: %w", ErrTransientConflict, err)
		}
		return CompletionResult{}, err
	}

	// The completion row is the source of truth from here. A failed mark is
	// repaired on read or by the reconciler.
	res := c.result
	err = retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
		return s.Store.Progress().MarkCompleted(ctx, c.userID, req.QuestID, res.TransactionHash, res.CompletedAt)
	})
	if err != nil {
		log.Warn("progress drift", slog.String("user_id", c.userID), slog.Any("error", err))
	}

	log.Info("quest completed",
		slog.String("user_id", c.userID),
		slog.Int("xp_earned", res.XPEarned),
		slog.Int("total_xp", res.TotalXP),
		slog.Int("new_achievements", len(res.NewAchievements)),
	)
	return res, nil
}

func (s *CompletionService) commit(ctx context.Context, wallet string, req CompleteRequest) (committed, error) {
	var out committed
	now := time.Now().UTC()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. User
		user, err := tx.Users().GetUserByWallet(ctx, wallet)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		// 2. Not yet completed
		_, err = tx.Completions().GetByUserQuest(ctx, user.ID, req.QuestID)
		if err == nil {
			return ErrAlreadyCompleted
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// 3. Started
		if _, err := tx.Progress().GetProgress(ctx, user.ID, req.QuestID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProgressNotFound
			}
			return err
		}

		// 4. Reward
		q, ok := catalog.Lookup(req.QuestID)
		if !ok {
			return ErrUnknownQuest
		}

		// 5. Completion row; the unique key settles any race
		completion := domain.CompletedQuest{
			ID:                 idx.NewAt(now).String(),
			UserID:             user.ID,
			QuestID:            q.ID,
			XPEarned:           q.XPReward,
			TransactionHash:    req.TransactionHash,
			BlockchainVerified: req.BlockchainVerified,
			CompletedAt:        now,
		}
		if err := tx.Completions().CreateCompletion(ctx, completion); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyCompleted
			}
			return err
		}

		// 6. XP, guarded by the version read in step 1
		total, err := tx.Users().AddXP(ctx, user.ID, user.Version, q.XPReward, now)
		if err != nil {
			return err
		}

		// 7. Achievements
		unlocked, err := unlockAchievements(ctx, tx, user.ID, total, now)
		if err != nil {
			return err
		}

		out = committed{
			userID: user.ID,
			result: CompletionResult{
				XPEarned:        q.XPReward,
				TotalXP:         total,
				TransactionHash: req.TransactionHash,
				CompletedAt:     now,
				NewAchievements: unlocked,
			},
		}
		return nil
	})
	return out, err
}

// unlockAchievements evaluates the rules against the user's totals and
// records the ones not yet held. Only rows actually inserted are returned.
func unlockAchievements(ctx context.Context, tx store.Tx, userID string, totalXP int, now time.Time) ([]domain.AchievementRule, error) {
	count, err := tx.Completions().CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	have, err := tx.Achievements().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []domain.AchievementRule{}
	for _, rule := range domain.EvaluateAchievements(totalXP, count, have) {
		inserted, err := tx.Achievements().Unlock(ctx, domain.Achievement{
			ID:         rule.ID,
			UserID:     userID,
			UnlockedAt: now,
		})
		if err != nil {
			return nil, err
		}
		if inserted {
			out = append(out, rule)
		}
	}
	return out, nil
}

// isTransient also counts a per-attempt deadline while the caller is still
// waiting.
func isTransient(ctx context.Context, err error) bool {
	if retryx.IsTransient(err) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil
}
