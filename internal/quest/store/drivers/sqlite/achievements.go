package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
)

type achievementsRepo struct {
	q querier
}

type achievementRow struct {
	AchievementID int       `db:"achievement_id"`
	UserID        string    `db:"user_id"`
	UnlockedAt    time.Time `db:"unlocked_at"`
}

func (r *achievementsRepo) ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error) {
	var rows []achievementRow
	err := r.q.SelectContext(ctx, &rows, `
		SELECT achievement_id, user_id, unlocked_at
		FROM user_achievements
		WHERE user_id = ?
		ORDER BY achievement_id ASC`, userID)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.Achievement, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Achievement{
			ID:         row.AchievementID,
			UserID:     row.UserID,
			UnlockedAt: row.UnlockedAt,
		})
	}
	return out, nil
}

func (r *achievementsRepo) Unlock(ctx context.Context, a domain.Achievement) (bool, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, achievement_id) DO NOTHING`,
		a.UserID, a.ID, a.UnlockedAt,
	)
	if err != nil {
		return false, mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *achievementsRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.q.GetContext(ctx, &n, `SELECT COUNT(*) FROM user_achievements WHERE user_id = ?`, userID); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}
