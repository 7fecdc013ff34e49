package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
)

type completionsRepo struct {
	q querier
}

type completionRow struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	QuestID            int       `db:"quest_id"`
	XPEarned           int       `db:"xp_earned"`
	TransactionHash    string    `db:"transaction_hash"`
	BlockchainVerified bool      `db:"blockchain_verified"`
	CompletedAt        time.Time `db:"completed_at"`
}

func (r completionRow) domain() domain.CompletedQuest {
	return domain.CompletedQuest{
		ID:                 r.ID,
		UserID:             r.UserID,
		QuestID:            r.QuestID,
		XPEarned:           r.XPEarned,
		TransactionHash:    r.TransactionHash,
		BlockchainVerified: r.BlockchainVerified,
		CompletedAt:        r.CompletedAt,
	}
}

func mapCompletions(rows []completionRow) []domain.CompletedQuest {
	out := make([]domain.CompletedQuest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out
}

const completionColumns = `c.id, c.user_id, c.quest_id, c.xp_earned, c.transaction_hash,
	c.blockchain_verified, c.completed_at`

func (r *completionsRepo) ListByUser(ctx context.Context, userID string) ([]domain.CompletedQuest, error) {
	var rows []completionRow
	err := r.q.SelectContext(ctx, &rows, `
		SELECT `+completionColumns+`
		FROM completed_quests c
		WHERE c.user_id = ?
		ORDER BY c.completed_at ASC, c.id ASC`, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	return mapCompletions(rows), nil
}

func (r *completionsRepo) GetByUserQuest(ctx context.Context, userID string, questID int) (domain.CompletedQuest, error) {
	var row completionRow
	err := r.q.GetContext(ctx, &row, `
		SELECT `+completionColumns+`
		FROM completed_quests c
		WHERE c.user_id = ? AND c.quest_id = ?`, userID, questID)
	if err != nil {
		return domain.CompletedQuest{}, mapErr(err)
	}
	return row.domain(), nil
}

func (r *completionsRepo) CreateCompletion(ctx context.Context, c domain.CompletedQuest) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO completed_quests
			(id, user_id, quest_id, xp_earned, transaction_hash, blockchain_verified, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.QuestID, c.XPEarned, c.TransactionHash, c.BlockchainVerified, c.CompletedAt,
	)
	return mapErr(err)
}

func (r *completionsRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.q.GetContext(ctx, &n, `SELECT COUNT(*) FROM completed_quests WHERE user_id = ?`, userID); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

type recentRow struct {
	WalletAddress string         `db:"wallet_address"`
	Username      sql.NullString `db:"username"`
	QuestID       int            `db:"quest_id"`
	XPEarned      int            `db:"xp_earned"`
	CompletedAt   time.Time      `db:"completed_at"`
}

func (r *completionsRepo) ListRecent(ctx context.Context, limit int) ([]domain.RecentCompletion, error) {
	var rows []recentRow
	err := r.q.SelectContext(ctx, &rows, `
		SELECT u.wallet_address, u.username, c.quest_id, c.xp_earned, c.completed_at
		FROM completed_quests c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.completed_at DESC, c.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.RecentCompletion, 0, len(rows))
	for _, row := range rows {
		name := domain.AnonymousName
		if row.Username.Valid && row.Username.String != "" {
			name = row.Username.String
		}
		out = append(out, domain.RecentCompletion{
			WalletAddress: row.WalletAddress,
			Username:      name,
			QuestID:       row.QuestID,
			XPEarned:      row.XPEarned,
			CompletedAt:   row.CompletedAt,
		})
	}
	return out, nil
}

func (r *completionsRepo) ListUnreconciled(ctx context.Context, afterID string, limit int) ([]domain.CompletedQuest, error) {
	var rows []completionRow
	err := r.q.SelectContext(ctx, &rows, `
		SELECT `+completionColumns+`
		FROM completed_quests c
		JOIN progress p ON p.user_id = c.user_id AND p.quest_id = c.quest_id
		WHERE p.status <> 'completed' AND c.id > ?
		ORDER BY c.id ASC
		LIMIT ?`, afterID, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	return mapCompletions(rows), nil
}
