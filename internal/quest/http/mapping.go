package http

import (
	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/pkg/questsdk"
)

func toProgress(p domain.Progress, wallet string) questsdk.Progress {
	steps := make([]questsdk.ProgressStep, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, questsdk.ProgressStep{
			StepID:      s.StepID,
			Completed:   s.Completed,
			CompletedAt: s.CompletedAt,
		})
	}
	return questsdk.Progress{
		ID:              p.ID,
		WalletAddress:   wallet,
		QuestID:         p.QuestID,
		Status:          string(p.Status),
		Steps:           steps,
		TransactionHash: p.TransactionHash,
		CompletedAt:     p.CompletedAt,
		StartedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toCompletedQuests(in []domain.CompletedQuest) []questsdk.CompletedQuest {
	out := make([]questsdk.CompletedQuest, 0, len(in))
	for _, c := range in {
		out = append(out, questsdk.CompletedQuest{
			QuestID:            c.QuestID,
			XPEarned:           c.XPEarned,
			TransactionHash:    c.TransactionHash,
			BlockchainVerified: c.BlockchainVerified,
			CompletedAt:        c.CompletedAt,
		})
	}
	return out
}

func toRuleAchievements(in []domain.AchievementRule) []questsdk.Achievement {
	out := make([]questsdk.Achievement, 0, len(in))
	for _, r := range in {
		out = append(out, questsdk.Achievement{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out
}

func toAchievements(in []domain.Achievement) []questsdk.Achievement {
	out := make([]questsdk.Achievement, 0, len(in))
	for _, a := range in {
		rule, _ := domain.AchievementRuleByID(a.ID)
		unlocked := a.UnlockedAt
		out = append(out, questsdk.Achievement{
			ID:          a.ID,
			Name:        rule.Name,
			Description: rule.Description,
			UnlockedAt:  &unlocked,
		})
	}
	return out
}

func toProfile(u domain.User) questsdk.UserProfile {
	return questsdk.UserProfile{
		ID:              u.ID,
		WalletAddress:   u.WalletAddress,
		Username:        u.Username,
		DisplayName:     u.DisplayName(),
		TotalXP:         u.TotalXP,
		CompletedQuests: toCompletedQuests(u.CompletedQuests),
		Achievements:    toAchievements(u.Achievements),
		RegisteredAt:    u.RegisteredAt,
		LastActiveAt:    u.LastActiveAt,
	}
}

func toQuest(q domain.Quest) questsdk.Quest {
	steps := make([]questsdk.QuestStep, 0, len(q.Steps))
	for _, s := range q.Steps {
		steps = append(steps, questsdk.QuestStep{ID: s.ID, Title: s.Title})
	}
	return questsdk.Quest{
		ID:          q.ID,
		Name:        q.Name,
		Title:       q.Title,
		Description: q.Description,
		XPReward:    q.XPReward,
		Steps:       steps,
	}
}

func toSessionUser(u domain.User, completed, achievements int) questsdk.SessionUser {
	return questsdk.SessionUser{
		ID:              u.ID,
		WalletAddress:   u.WalletAddress,
		TotalXP:         u.TotalXP,
		CompletedQuests: completed,
		Achievements:    achievements,
	}
}

func toLeaderboard(lb service.Leaderboard) questsdk.LeaderboardResponse {
	entries := make([]questsdk.LeaderboardEntry, 0, len(lb.Entries))
	for _, e := range lb.Entries {
		entries = append(entries, questsdk.LeaderboardEntry{
			Rank:            e.Rank,
			Username:        e.Username,
			WalletAddress:   e.WalletAddress,
			TotalXP:         e.TotalXP,
			CompletedQuests: e.CompletedQuests,
			Achievements:    e.Achievements,
		})
	}
	return questsdk.LeaderboardResponse{
		Leaderboard: entries,
		Pagination: questsdk.Pagination{
			Total:   lb.Total,
			Limit:   lb.Limit,
			Offset:  lb.Offset,
			HasMore: lb.HasMore,
		},
	}
}
