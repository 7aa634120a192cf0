// Package result holds the outcome of a user attempting a task, and the
// spaced-repetition logic that decides which overdue task to serve next.
package result

import (
	"time"

	"github.com/studyloop/backend/internal/domain/score"
	"github.com/studyloop/backend/internal/id"
)

// Result is one outcome of a user attempting one task, in the context of at
// most one session. There is at most one row per (session, task) pair; a
// resubmission within the same session overwrites the row instead of adding
// a second one.
type Result struct {
	ID string `json:"id" db:"id"`
	// UserID is optional: results outlive user deletion because the
	// aggregate history stays relevant to the platform.
	UserID    *string `json:"user_id,omitempty" db:"user_id"`
	TaskID    string  `json:"task_id" db:"task_id"`
	SessionID *string `json:"session_id,omitempty" db:"session_id"`
	// Score is always stored clamped to [0,1], whatever the caller sent in.
	Score float64 `json:"score" db:"score"`
	// TimeUsed is the submission time in seconds, when the client reported one.
	TimeUsed    *float64   `json:"time_used,omitempty" db:"time_used"`
	RevisitDate *time.Time `json:"revisit_date,omitempty" db:"revisit_date"`
	// IsManual marks scores hand-set by an operator rather than computed
	// from a submission.
	IsManual  bool      `json:"is_manual" db:"is_manual"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// New builds a result from a freshly computed submission score. The score is
// clamped and the revisit date derived from it.
func New(userID, taskID string, sessionID *string, rawScore float64, timeUsed *float64, now time.Time) *Result {
	clamped := score.Clamp(rawScore)
	revisit := score.NextRevisitDate(now, clamped)
	return &Result{
		ID:          id.GenerateID(),
		UserID:      &userID,
		TaskID:      taskID,
		SessionID:   sessionID,
		Score:       clamped,
		TimeUsed:    timeUsed,
		RevisitDate: &revisit,
		IsManual:    false,
		CreatedAt:   now,
	}
}

// Rescore overwrites the score and time of an existing result and recomputes
// the revisit date. manual marks the update as an operator override rather
// than a new submission.
func (r *Result) Rescore(rawScore float64, timeUsed *float64, now time.Time, manual bool) {
	r.Score = score.Clamp(rawScore)
	revisit := score.NextRevisitDate(now, r.Score)
	r.RevisitDate = &revisit
	if timeUsed != nil {
		r.TimeUsed = timeUsed
	}
	if manual {
		r.IsManual = true
	}
}

// DaysUntilRevisit returns the number of whole days until the revisit date,
// counting the current partial day as one. Nil when no revisit is scheduled.
func (r *Result) DaysUntilRevisit(now time.Time) *int {
	if r.RevisitDate == nil {
		return nil
	}
	days := int(r.RevisitDate.Sub(now).Hours()/24) + 1
	return &days
}
