package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/catalog"
	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
)

const (
	DefaultLeaderboardLimit = 20
	MaxLeaderboardLimit     = 100
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

type ProfileService struct {
	Store    store.Store
	Identity *IdentityService
	Retry    retryx.Policy
}

type Leaderboard struct {
	Entries []domain.LeaderboardEntry
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

type InteractionQuest struct {
	QuestID         int
	QuestName       string
	XPEarned        int
	TransactionHash string
	CompletedAt     time.Time
}

// Interaction summarises whether a wallet has ever used the app.
type Interaction struct {
	HasInteracted   bool
	WalletAddress   string
	TotalXP         int
	QuestsCompleted int
	Quests          []InteractionQuest
	RegisteredAt    *time.Time
	LastActiveAt    *time.Time
}

// Profile resolves (or registers) wallet and returns it with completions and
// achievements attached.
func (s *ProfileService) Profile(ctx context.Context, wallet string) (domain.User, error) {
	u, err := s.Identity.ResolveOrCreate(ctx, wallet)
	if err != nil {
		return domain.User{}, err
	}
	return s.hydrate(ctx, u)
}

// Me is Profile for an authenticated user id.
func (s *ProfileService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.User, error) {
		return s.Store.Users().GetUserByID(ctx, userID)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return s.hydrate(ctx, u)
}

func (s *ProfileService) hydrate(ctx context.Context, u domain.User) (domain.User, error) {
	err := retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
		var err error
		if u.CompletedQuests, err = s.Store.Completions().ListByUser(ctx, u.ID); err != nil {
			return err
		}
		u.Achievements, err = s.Store.Achievements().ListByUser(ctx, u.ID)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// SetUsername sets or, for a blank name, clears the username.
func (s *ProfileService) SetUsername(ctx context.Context, wallet, name string) (domain.User, error) {
	name = strings.TrimSpace(name)

	var username *string
	if name != "" {
		if !usernamePattern.MatchString(name) {
			return domain.User{}, ErrInvalidUsername
		}
		username = &name
	}

	u, err := s.Identity.ResolveOrCreate(ctx, wallet)
	if err != nil {
		return domain.User{}, err
	}

	err = retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
		return s.Store.Users().UpdateUsername(ctx, u.ID, username, time.Now().UTC())
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrUsernameTaken
	}
	if err != nil {
		return domain.User{}, err
	}

	return s.Me(ctx, u.ID)
}

func (s *ProfileService) Exists(ctx context.Context, wallet string) (bool, error) {
	_, err := s.Identity.Lookup(ctx, wallet)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUserNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Leaderboard pages users by XP. limit falls back to 20 and is capped at 100.
func (s *ProfileService) Leaderboard(ctx context.Context, limit, offset int) (Leaderboard, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, MaxLeaderboardLimit)
	offset = max(offset, 0)

	var (
		entries []domain.LeaderboardEntry
		total   int
	)
	err := retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
		var err error
		if entries, err = s.Store.Users().Leaderboard(ctx, limit, offset); err != nil {
			return err
		}
		total, err = s.Store.Users().Count(ctx)
		return err
	})
	if err != nil {
		return Leaderboard{}, err
	}

	return Leaderboard{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(entries) < total,
	}, nil
}

func (s *ProfileService) Stats(ctx context.Context) (domain.Stats, error) {
	return retryx.DoValue(ctx, s.Retry, func(ctx context.Context) (domain.Stats, error) {
		return s.Store.Users().Stats(ctx)
	})
}

func (s *ProfileService) Interaction(ctx context.Context, wallet string) (Interaction, error) {
	out := Interaction{WalletAddress: domain.NormalizeWallet(wallet), Quests: []InteractionQuest{}}

	u, err := s.Identity.Lookup(ctx, wallet)
	if errors.Is(err, ErrUserNotFound) {
		return out, nil
	}
	if err != nil {
		return Interaction{}, err
	}

	completed, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) ([]domain.CompletedQuest, error) {
		return s.Store.Completions().ListByUser(ctx, u.ID)
	})
	if err != nil {
		return Interaction{}, err
	}

	out.HasInteracted = true
	out.TotalXP = u.TotalXP
	out.QuestsCompleted = len(completed)
	out.RegisteredAt = &u.RegisteredAt
	out.LastActiveAt = &u.LastActiveAt
	for _, c := range completed {
		out.Quests = append(out.Quests, InteractionQuest{
			QuestID:         c.QuestID,
			QuestName:       catalog.Name(c.QuestID),
			XPEarned:        c.XPEarned,
			TransactionHash: c.TransactionHash,
			CompletedAt:     c.CompletedAt,
		})
	}
	return out, nil
}
