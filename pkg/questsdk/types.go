package questsdk

import (
	"time"

	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/jwtx"
)

// ErrorResponse is the JSON error body: {error, code, retryable?}.
type ErrorResponse = httpx.ErrorBody

// ============================================================================
// Progress
// ============================================================================

type StartQuestRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type UpdateStepRequest struct {
	WalletAddress string `json:"walletAddress"`
	StepID        int    `json:"stepId"`
	Completed     bool   `json:"completed"`
}

type CompleteQuestRequest struct {
	WalletAddress      string `json:"walletAddress"`
	TransactionHash    string `json:"transactionHash"`
	BlockchainVerified bool   `json:"blockchainVerified"`
}

type ProgressStep struct {
	StepID      int        `json:"stepId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type Progress struct {
	ID              string         `json:"id"`
	WalletAddress   string         `json:"walletAddress"`
	QuestID         int            `json:"questId"`
	Status          string         `json:"status"`
	Steps           []ProgressStep `json:"steps"`
	TransactionHash string         `json:"transactionHash,omitempty"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
	StartedAt       time.Time      `json:"startedAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type Achievement struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

type CompleteQuestResponse struct {
	Message         string        `json:"message"`
	XPEarned        int           `json:"xpEarned"`
	TotalXP         int           `json:"totalXP"`
	TransactionHash string        `json:"transactionHash"`
	CompletedAt     time.Time     `json:"completedAt"`
	NewAchievements []Achievement `json:"newAchievements"`
}

type CompletedQuest struct {
	QuestID            int       `json:"questId"`
	XPEarned           int       `json:"xpEarned"`
	TransactionHash    string    `json:"transactionHash"`
	BlockchainVerified bool      `json:"blockchainVerified"`
	CompletedAt        time.Time `json:"completedAt"`
}

type ProgressSummaryResponse struct {
	WalletAddress   string           `json:"walletAddress"`
	TotalXP         int              `json:"totalXP"`
	CompletedQuests []CompletedQuest `json:"completedQuests"`
	ActiveProgress  []Progress       `json:"activeProgress"`
}

type QuestStatusResponse struct {
	Completed     bool   `json:"completed"`
	WalletAddress string `json:"walletAddress"`
	QuestID       int    `json:"questId"`
	XPEarned      int    `json:"xpEarned"`
}

type RecentCompletion struct {
	WalletAddress string    `json:"walletAddress"`
	Username      string    `json:"username"`
	QuestID       int       `json:"questId"`
	XPEarned      int       `json:"xpEarned"`
	CompletedAt   time.Time `json:"completedAt"`
}

// ============================================================================
// Users
// ============================================================================

type UserProfile struct {
	ID              string           `json:"id"`
	WalletAddress   string           `json:"walletAddress"`
	Username        *string          `json:"username"`
	DisplayName     string           `json:"displayName"`
	TotalXP         int              `json:"totalXP"`
	CompletedQuests []CompletedQuest `json:"completedQuests"`
	Achievements    []Achievement    `json:"achievements"`
	RegisteredAt    time.Time        `json:"registeredAt"`
	LastActiveAt    time.Time        `json:"lastActiveAt"`
}

// UpdateProfileRequest sets the username; an empty string clears it.
type UpdateProfileRequest struct {
	Username string `json:"username"`
}

type ExistsResponse struct {
	Exists        bool   `json:"exists"`
	WalletAddress string `json:"walletAddress"`
}

type LeaderboardEntry struct {
	Rank            int    `json:"rank"`
	Username        string `json:"username"`
	WalletAddress   string `json:"walletAddress"`
	TotalXP         int    `json:"totalXP"`
	CompletedQuests int    `json:"completedQuests"`
	Achievements    int    `json:"achievements"`
}

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Pagination  Pagination         `json:"pagination"`
}

type StatsResponse struct {
	TotalUsers           int `json:"totalUsers"`
	TotalXP              int `json:"totalXP"`
	TotalQuestsCompleted int `json:"totalQuestsCompleted"`
}

type InteractionQuest struct {
	QuestID         int       `json:"questId"`
	QuestName       string    `json:"questName"`
	XPEarned        int       `json:"xpEarned"`
	TransactionHash string    `json:"transactionHash"`
	CompletedAt     time.Time `json:"completedAt"`
}

type InteractionResponse struct {
	HasInteracted   bool               `json:"hasInteracted"`
	WalletAddress   string             `json:"walletAddress"`
	TotalXP         int                `json:"totalXP"`
	QuestsCompleted int                `json:"questsCompleted"`
	Quests          []InteractionQuest `json:"quests"`
	RegisteredAt    *time.Time         `json:"registeredAt,omitempty"`
	LastActiveAt    *time.Time         `json:"lastActiveAt,omitempty"`
}

// ============================================================================
// Quests
// ============================================================================

type QuestStep struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type Quest struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	XPReward    int         `json:"xpReward"`
	Steps       []QuestStep `json:"steps"`
}

type QuestsResponse struct {
	Quests  []Quest `json:"quests"`
	TotalXP int     `json:"totalXP"`
}

// ============================================================================
// Auth
// ============================================================================

type LoginRequest struct {
	WalletAddress  string `json:"walletAddress"`
	Browser        string `json:"browser,omitempty"`
	ReferralSource string `json:"referralSource,omitempty"`
}

type SessionUser struct {
	ID              string `json:"id"`
	WalletAddress   string `json:"walletAddress"`
	TotalXP         int    `json:"totalXP"`
	CompletedQuests int    `json:"completedQuests"`
	Achievements    int    `json:"achievements"`
}

type LoginResponse struct {
	Token string `json:"token"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int         `json:"expiresIn"`
	User      SessionUser `json:"user"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type VerifyResponse struct {
	Valid bool        `json:"valid"`
	User  SessionUser `json:"user"`
}

// JWKSResponse contains the public keys session tokens are signed with.
type JWKSResponse jwtx.JWKS

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
