package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
)

type progressRepo struct {
	q querier
}

type progressRow struct {
	ID              string       `db:"id"`
	UserID          string       `db:"user_id"`
	QuestID         int          `db:"quest_id"`
	Status          string       `db:"status"`
	TransactionHash string       `db:"transaction_hash"`
	CompletedAt     sql.NullTime `db:"completed_at"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

type stepRow struct {
	StepID      int          `db:"step_id"`
	Completed   bool         `db:"completed"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	v := nt.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

const progressColumns = `id, user_id, quest_id, status, transaction_hash, completed_at, created_at, updated_at`

func (r *progressRepo) hydrate(ctx context.Context, row progressRow) (domain.Progress, error) {
	status, err := domain.ParseProgressStatus(row.Status)
	if err != nil {
		return domain.Progress{}, err
	}

	var steps []stepRow
	err = r.q.SelectContext(ctx, &steps, `
		SELECT step_id, completed, completed_at
		FROM progress_steps
		WHERE progress_id = ?
		ORDER BY step_id ASC`, row.ID)
	if err != nil {
		return domain.Progress{}, mapErr(err)
	}

	p := domain.Progress{
		ID:              row.ID,
		UserID:          row.UserID,
		QuestID:         row.QuestID,
		Status:          status,
		Steps:           make([]domain.ProgressStep, 0, len(steps)),
		TransactionHash: row.TransactionHash,
		CompletedAt:     timePtr(row.CompletedAt),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	for _, s := range steps {
		p.Steps = append(p.Steps, domain.ProgressStep{
			StepID:      s.StepID,
			Completed:   s.Completed,
			CompletedAt: timePtr(s.CompletedAt),
		})
	}
	return p, nil
}

func (r *progressRepo) GetProgress(ctx context.Context, userID string, questID int) (domain.Progress, error) {
	var row progressRow
	err := r.q.GetContext(ctx, &row,
		`SELECT `+progressColumns+` FROM progress WHERE user_id = ? AND quest_id = ?`,
		userID, questID,
	)
	if err != nil {
		return domain.Progress{}, mapErr(err)
	}
	return r.hydrate(ctx, row)
}

func (r *progressRepo) CreateProgress(ctx context.Context, p domain.Progress) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO progress (`+progressColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.QuestID, string(p.Status), p.TransactionHash,
		nullTime(p.CompletedAt), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}

	for _, s := range p.Steps {
		_, err := r.q.ExecContext(ctx, `
			INSERT INTO progress_steps (progress_id, step_id, completed, completed_at)
			VALUES (?, ?, ?, ?)`,
			p.ID, s.StepID, s.Completed, nullTime(s.CompletedAt),
		)
		if err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (r *progressRepo) SetStep(ctx context.Context, progressID string, stepID int, completed bool, at time.Time) error {
	var completedAt sql.NullTime
	if completed {
		completedAt = sql.NullTime{Time: at, Valid: true}
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE progress_steps SET completed = ?, completed_at = ?
		WHERE progress_id = ? AND step_id = ?`,
		completed, completedAt, progressID, stepID,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *progressRepo) exists(ctx context.Context, query string, args ...any) error {
	var n int
	if err := r.q.GetContext(ctx, &n, query, args...); err != nil {
		return mapErr(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *progressRepo) UpdateStatus(ctx context.Context, progressID string, status domain.ProgressStatus, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE progress SET status = ?, updated_at = ?
		WHERE id = ? AND status <> 'completed'`,
		string(status), at, progressID,
	)
	if err != nil {
		return mapErr(err)
	}
	if err := requireAffected(res); err == nil {
		return nil
	}
	// Completed rows are left alone; only a missing row is an error.
	return r.exists(ctx, `SELECT COUNT(*) FROM progress WHERE id = ?`, progressID)
}

func (r *progressRepo) MarkCompleted(ctx context.Context, userID string, questID int, txHash string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE progress SET
			status = 'completed',
			transaction_hash = ?,
			completed_at = ?,
			updated_at = ?
		WHERE user_id = ? AND quest_id = ? AND status <> 'completed'`,
		txHash, at, at, userID, questID,
	)
	if err != nil {
		return mapErr(err)
	}
	if err := requireAffected(res); err == nil {
		return nil
	}
	return r.exists(ctx,
		`SELECT COUNT(*) FROM progress WHERE user_id = ? AND quest_id = ?`,
		userID, questID,
	)
}

func (r *progressRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Progress, error) {
	var rows []progressRow
	err := r.q.SelectContext(ctx, &rows, `
		SELECT `+progressColumns+`
		FROM progress
		WHERE user_id = ? AND status <> 'completed'
		ORDER BY quest_id ASC`, userID)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.Progress, 0, len(rows))
	for _, row := range rows {
		p, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
