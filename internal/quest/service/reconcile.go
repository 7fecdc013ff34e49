package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/pkg/retryx"
	"github.com/go-co-op/gocron/v2"
)

// ReconcileService periodically marks progress completed where a completion
// row exists but the post-commit update never landed.
type ReconcileService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	BatchSize int
	Retry     retryx.Policy

	scheduler gocron.Scheduler
}

// NewReconcileService defaults interval to 5 minutes and batch size to 100.
func NewReconcileService(store store.Store, logger *slog.Logger, interval time.Duration) *ReconcileService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReconcileService{
		Store:     store,
		Logger:    logger,
		Interval:  interval,
		BatchSize: 100,
		Retry:     retryx.DefaultPolicy(),
	}
}

// Start schedules the job and runs it once immediately. It does not block.
func (s *ReconcileService) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.Interval),
		gocron.NewTask(func() {
			// A pass never outlives its interval.
			ctx, cancel := context.WithTimeout(context.Background(), s.Interval)
			defer cancel()
			if _, err := s.Reconcile(ctx); err != nil {
				s.Logger.Error("reconcile failed", slog.Any("error", err))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return err
	}

	sched.Start()
	s.scheduler = sched
	s.Logger.Info("reconciler started", slog.Duration("interval", s.Interval))
	return nil
}

// Stop waits for a running pass to finish.
func (s *ReconcileService) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	err := s.scheduler.Shutdown()
	s.scheduler = nil
	s.Logger.Info("reconciler stopped")
	return err
}

// Reconcile runs one pass and returns how many progress rows it fixed. Rows
// are independent; one failing does not stop the rest. The pass pages by
// completion id so rows that keep failing never hide the ones behind them.
func (s *ReconcileService) Reconcile(ctx context.Context) (int, error) {
	limit := s.BatchSize
	if limit <= 0 {
		limit = 100
	}

	var (
		fixed, failed int
		cursor        string
	)
	for {
		rows, err := retryx.DoValue(ctx, s.Retry, func(ctx context.Context) ([]domain.CompletedQuest, error) {
			return s.Store.Completions().ListUnreconciled(ctx, cursor, limit)
		})
		if err != nil {
			return fixed, err
		}

		for _, c := range rows {
			err := retryx.Do(ctx, s.Retry, func(ctx context.Context) error {
				return s.Store.Progress().MarkCompleted(ctx, c.UserID, c.QuestID, c.TransactionHash, c.CompletedAt)
			})
			if err != nil {
				failed++
				s.Logger.Error("reconcile: mark completed failed",
					slog.String("completion_id", c.ID),
					slog.String("user_id", c.UserID),
					slog.Int("quest_id", c.QuestID),
					slog.Any("error", err),
				)
				continue
			}
			fixed++
		}

		if len(rows) < limit {
			break
		}
		cursor = rows[len(rows)-1].ID
		if err := ctx.Err(); err != nil {
			return fixed, err
		}
	}

	if fixed == 0 && failed == 0 {
		s.Logger.Debug("reconcile: nothing to do")
		return 0, nil
	}
	s.Logger.Info("reconcile completed", slog.Int("fixed", fixed), slog.Int("failed", failed))
	return fixed, nil
}
