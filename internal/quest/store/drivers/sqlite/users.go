package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
)

type usersRepo struct {
	q querier
}

type userRow struct {
	ID             string         `db:"id"`
	WalletAddress  string         `db:"wallet_address"`
	Username       sql.NullString `db:"username"`
	TotalXP        int            `db:"total_xp"`
	Version        int64          `db:"version"`
	Browser        string         `db:"browser"`
	ReferralSource string         `db:"referral_source"`
	RegisteredAt   time.Time      `db:"registered_at"`
	LastActiveAt   time.Time      `db:"last_active_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func (r userRow) domain() domain.User {
	return domain.User{
		ID:             r.ID,
		WalletAddress:  r.WalletAddress,
		Username:       stringPtr(r.Username),
		TotalXP:        r.TotalXP,
		Version:        r.Version,
		Browser:        r.Browser,
		ReferralSource: r.ReferralSource,
		RegisteredAt:   r.RegisteredAt,
		LastActiveAt:   r.LastActiveAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

const userColumns = `id, wallet_address, username, total_xp, version, browser,
	referral_source, registered_at, last_active_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := r.q.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return row.domain(), nil
}

func (r *usersRepo) GetUserByWallet(ctx context.Context, wallet string) (domain.User, error) {
	var row userRow
	err := r.q.GetContext(ctx, &row, `SELECT `+userColumns+` FROM users WHERE wallet_address = ?`, wallet)
	if err != nil {
		return domain.User{}, mapErr(err)
	}
	return row.domain(), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.WalletAddress, nullString(u.Username), u.TotalXP, u.Version,
		u.Browser, u.ReferralSource, u.RegisteredAt, u.LastActiveAt, u.UpdatedAt,
	)
	return mapErr(err)
}

func (r *usersRepo) TouchLastActive(ctx context.Context, id string, meta domain.UserMeta, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users SET
			last_active_at = ?,
			updated_at = ?,
			browser = CASE WHEN browser = '' THEN ? ELSE browser END,
			referral_source = CASE WHEN referral_source = '' THEN ? ELSE referral_source END
		WHERE id = ?`,
		at, at, meta.Browser, meta.ReferralSource, id,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdateUsername(ctx context.Context, id string, username *string, at time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET username = ?, updated_at = ? WHERE id = ?`,
		nullString(username), at, id,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) AddXP(ctx context.Context, id string, expectedVersion int64, delta int, at time.Time) (int, error) {
	var total int
	err := r.q.GetContext(ctx, &total, `
		UPDATE users SET
			total_xp = total_xp + ?,
			version = version + 1,
			updated_at = ?
		WHERE id = ? AND version = ?
		RETURNING total_xp`,
		delta, at, id, expectedVersion,
	)
	if err == nil {
		return total, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, mapErr(err)
	}

	// Nothing matched: either the user is gone or the version moved on.
	var exists int
	if err := r.q.GetContext(ctx, &exists, `SELECT COUNT(*) FROM users WHERE id = ?`, id); err != nil {
		return 0, mapErr(err)
	}
	if exists == 0 {
		return 0, store.ErrNotFound
	}
	return 0, store.ErrConflict
}

type leaderboardRow struct {
	Username        sql.NullString `db:"username"`
	WalletAddress   string         `db:"wallet_address"`
	TotalXP         int            `db:"total_xp"`
	CompletedQuests int            `db:"completed_quests"`
	Achievements    int            `db:"achievements"`
}

func (r *usersRepo) Leaderboard(ctx context.Context, limit, offset int) ([]domain.LeaderboardEntry, error) {
	var rows []leaderboardRow
	err := r.q.SelectContext(ctx, &rows, `
		SELECT
			u.username,
			u.wallet_address,
			u.total_xp,
			(SELECT COUNT(*) FROM completed_quests c WHERE c.user_id = u.id) AS completed_quests,
			(SELECT COUNT(*) FROM user_achievements a WHERE a.user_id = u.id) AS achievements
		FROM users u
		ORDER BY u.total_xp DESC, u.registered_at ASC, u.id ASC
		LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		name := domain.AnonymousName
		if row.Username.Valid && row.Username.String != "" {
			name = row.Username.String
		}
		out = append(out, domain.LeaderboardEntry{
			Rank:            offset + i + 1,
			Username:        name,
			WalletAddress:   row.WalletAddress,
			TotalXP:         row.TotalXP,
			CompletedQuests: row.CompletedQuests,
			Achievements:    row.Achievements,
		})
	}
	return out, nil
}

func (r *usersRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

func (r *usersRepo) Stats(ctx context.Context) (domain.Stats, error) {
	var row struct {
		TotalUsers           int `db:"total_users"`
		TotalXP              int `db:"total_xp"`
		TotalQuestsCompleted int `db:"total_quests_completed"`
	}
	err := r.q.GetContext(ctx, &row, `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COALESCE(SUM(total_xp), 0) FROM users) AS total_xp,
			(SELECT COUNT(*) FROM completed_quests) AS total_quests_completed`)
	if err != nil {
		return domain.Stats{}, mapErr(err)
	}
	return domain.Stats{
		TotalUsers:           row.TotalUsers,
		TotalXP:              row.TotalXP,
		TotalQuestsCompleted: row.TotalQuestsCompleted,
	}, nil
}
