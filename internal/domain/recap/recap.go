// Package recap ranks topics whose tasks are collectively coming up for
// review, for the "recommended recap" view.
package recap

import (
	"errors"
	"sort"
	"time"

	"github.com/studyloop/backend/internal/domain/score"
)

// ErrInvalidQuery means the caller asked for an inverted day window or a
// non-positive result limit. Surfaced immediately; there is nothing to retry.
var ErrInvalidQuery = errors.New("recap window is inverted or limit is not positive")

// Window is a day-offset range relative to now. Negative offsets reach into
// the past, so {-3, 10} covers everything due between three days ago and ten
// days from now.
type Window struct {
	LowerBoundDays int
	UpperBoundDays int
}

// Validate rejects inverted windows and non-positive limits.
func (w Window) Validate(limit int) error {
	if limit <= 0 || w.LowerBoundDays > w.UpperBoundDays {
		return ErrInvalidQuery
	}
	return nil
}

// Bounds resolves the window into absolute timestamps.
func (w Window) Bounds(now time.Time) (from, to time.Time) {
	return now.Add(time.Duration(w.LowerBoundDays) * 24 * time.Hour),
		now.Add(time.Duration(w.UpperBoundDays) * 24 * time.Hour)
}

// TaskRevisit is one latest-per-task result inside the requested window,
// already joined to its topic and subject by the store.
type TaskRevisit struct {
	TopicID     string    `db:"topic_id"`
	TopicName   string    `db:"topic_name"`
	SubjectID   string    `db:"subject_id"`
	SubjectName string    `db:"subject_name"`
	Score       float64   `db:"score"`
	RevisitDate time.Time `db:"revisit_date"`
}

// RecommendedRecap is the per-topic aggregate served to the user: how well
// the topic stands and when its soonest revisit inside the window falls.
// Computed fresh on every request, never persisted.
type RecommendedRecap struct {
	TopicID     string    `json:"topic_id"`
	TopicName   string    `json:"topic_name"`
	SubjectID   string    `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	ResultScore float64   `json:"result_score"`
	RevisitAt   time.Time `json:"revisit_at"`
}

// Rank folds per-task revisits into one entry per topic and orders the
// topics by soonest revisit, capped to limit.
//
// The aggregate score divides the summed (clamped) task scores by the total
// number of tasks ever created in the topic, so untouched tasks drag the
// score down: a topic is only "known" when all of it has been practiced.
func Rank(revisits []TaskRevisit, taskCountByTopic map[string]int, limit int) []RecommendedRecap {
	byTopic := make(map[string]*RecommendedRecap)
	sums := make(map[string]float64)

	for _, r := range revisits {
		sums[r.TopicID] += score.Clamp(r.Score)

		entry, ok := byTopic[r.TopicID]
		if !ok {
			byTopic[r.TopicID] = &RecommendedRecap{
				TopicID:     r.TopicID,
				TopicName:   r.TopicName,
				SubjectID:   r.SubjectID,
				SubjectName: r.SubjectName,
				RevisitAt:   r.RevisitDate,
			}
			continue
		}
		if r.RevisitDate.Before(entry.RevisitAt) {
			entry.RevisitAt = r.RevisitDate
		}
	}

	recaps := make([]RecommendedRecap, 0, len(byTopic))
	for topicID, entry := range byTopic {
		total := taskCountByTopic[topicID]
		if total > 0 {
			entry.ResultScore = sums[topicID] / float64(total)
		}
		recaps = append(recaps, *entry)
	}

	sort.Slice(recaps, func(i, j int) bool {
		if recaps[i].RevisitAt.Equal(recaps[j].RevisitAt) {
			return recaps[i].TopicID < recaps[j].TopicID
		}
		return recaps[i].RevisitAt.Before(recaps[j].RevisitAt)
	})

	if len(recaps) > limit {
		recaps = recaps[:limit]
	}
	return recaps
}
