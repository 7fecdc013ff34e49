package domain

import "time"

type Achievement struct {
	ID         int
	UserID     string
	UnlockedAt time.Time
}

// AchievementRule unlocks once a user's totals reach its thresholds.
type AchievementRule struct {
	ID          int
	Name        string
	Description string
	MinXP       int
	MinQuests   int
}

func (r AchievementRule) Satisfied(totalXP, questCount int) bool {
	return totalXP >= r.MinXP && questCount >= r.MinQuests
}

var AchievementRules = []AchievementRule{
	{ID: 1, Name: "DeFi Novice", Description: "Earn your first 100 XP", MinXP: 100},
	{ID: 2, Name: "Token Scholar", Description: "Reach 500 XP", MinXP: 500},
	{ID: 3, Name: "Liquidity Expert", Description: "Reach 1000 XP", MinXP: 1000},
	{ID: 4, Name: "DeFi Master", Description: "Complete all five quests", MinQuests: 5},
}

func AchievementRuleByID(id int) (AchievementRule, bool) {
	for _, r := range AchievementRules {
		if r.ID == id {
			return r, true
		}
	}
	return AchievementRule{}, false
}

// EvaluateAchievements returns the rules newly satisfied by the given totals,
// skipping any already unlocked. It never revokes.
func EvaluateAchievements(totalXP, questCount int, unlocked []Achievement) []AchievementRule {
	have := make(map[int]struct{}, len(unlocked))
	for _, a := range unlocked {
		have[a.ID] = struct{}{}
	}

	var out []AchievementRule
	for _, r := range AchievementRules {
		if _, ok := have[r.ID]; ok {
			continue
		}
		if r.Satisfied(totalXP, questCount) {
			out = append(out, r)
		}
	}
	return out
}
