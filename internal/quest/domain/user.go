package domain

import "time"

// AnonymousName is shown for users that never picked a username.
const AnonymousName = "Anonymous"

type User struct {
	ID             string
	WalletAddress  string  // lowercase, immutable
	Username       *string // nil until chosen; unique when set
	TotalXP        int
	Version        int64 // bumped on every XP write
	Browser        string
	ReferralSource string
	RegisteredAt   time.Time
	LastActiveAt   time.Time
	UpdatedAt      time.Time

	// Hydrated by the service layer; not columns.
	CompletedQuests []CompletedQuest
	Achievements    []Achievement
}

func (u User) DisplayName() string {
	if u.Username == nil || *u.Username == "" {
		return AnonymousName
	}
	return *u.Username
}

// UserMeta is optional first-visit metadata recorded at login.
type UserMeta struct {
	Browser        string
	ReferralSource string
}

type CompletedQuest struct {
	ID                 string
	UserID             string
	QuestID            int
	XPEarned           int
	TransactionHash    string
	BlockchainVerified bool
	CompletedAt        time.Time
}

type LeaderboardEntry struct {
	Rank            int
	Username        string
	WalletAddress   string
	TotalXP         int
	CompletedQuests int
	Achievements    int
}

type RecentCompletion struct {
	WalletAddress string
	Username      string
	QuestID       int
	XPEarned      int
	CompletedAt   time.Time
}

type Stats struct {
	TotalUsers           int
	TotalXP              int
	TotalQuestsCompleted int
}
