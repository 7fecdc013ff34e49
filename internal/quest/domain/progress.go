package domain

import (
	"fmt"
	"time"
)

type ProgressStatus string

const (
	StatusStarted            ProgressStatus = "started"
	StatusInProgress         ProgressStatus = "in_progress"
	StatusReadyForCompletion ProgressStatus = "ready_for_completion"
	StatusCompleted          ProgressStatus = "completed"
)

func (s ProgressStatus) Valid() bool {
	switch s {
	case StatusStarted, StatusInProgress, StatusReadyForCompletion, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether the quest is underway but not yet completed.
func (s ProgressStatus) Active() bool {
	return s.Valid() && s != StatusCompleted
}

func ParseProgressStatus(s string) (ProgressStatus, error) {
	st := ProgressStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("domain: unknown progress status %q", s)
	}
	return st, nil
}

type Progress struct {
	ID              string
	UserID          string
	QuestID         int
	Status          ProgressStatus
	Steps           []ProgressStep
	TransactionHash string
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProgressStep struct {
	StepID      int
	Completed   bool
	CompletedAt *time.Time
}

// NewProgress builds an in_progress record with every quest step incomplete.
func NewProgress(id, userID string, q Quest, now time.Time) Progress {
	steps := make([]ProgressStep, 0, len(q.Steps))
	for _, s := range q.Steps {
		steps = append(steps, ProgressStep{StepID: s.ID})
	}
	return Progress{
		ID:        id,
		UserID:    userID,
		QuestID:   q.ID,
		Status:    StatusInProgress,
		Steps:     steps,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p Progress) PendingSteps() int {
	n := 0
	for _, s := range p.Steps {
		if !s.Completed {
			n++
		}
	}
	return n
}

// NextStatus derives status after a step toggle given how many steps are
// still incomplete. Completed is terminal. A ready quest whose step gets
// unchecked drops back to in_progress.
func NextStatus(current ProgressStatus, pending int) ProgressStatus {
	switch {
	case current == StatusCompleted:
		return StatusCompleted
	case pending == 0:
		return StatusReadyForCompletion
	case current == StatusReadyForCompletion, current == StatusStarted:
		return StatusInProgress
	default:
		return current
	}
}
