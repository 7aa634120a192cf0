// Package mastery aggregates stored scores into per-topic and per-subject
// knowledge levels.
package mastery

import (
	"math"

	"github.com/studyloop/backend/internal/domain/score"
)

// TopicLevel is a user's accumulated score in one topic against the maximum
// achievable there. MaxScore counts every task ever created in the topic —
// soft-deleted ones included, since a removed task still represents
// knowledge that was once tested.
type TopicLevel struct {
	TopicID      string  `json:"topic_id"`
	CorrectScore float64 `json:"correct_score"`
	MaxScore     float64 `json:"max_score"`
}

// SubjectLevel is the same aggregation scoped to a whole subject.
type SubjectLevel struct {
	SubjectID    string  `json:"subject_id"`
	CorrectScore float64 `json:"correct_score"`
	MaxScore     float64 `json:"max_score"`
}

// NewSubjectLevel sums the user's latest-per-task scores in the subject.
// A user with no results gets {0, 1}: a defined zero level instead of a
// division by zero downstream.
func NewSubjectLevel(subjectID string, scores []float64, taskCount int) SubjectLevel {
	if len(scores) == 0 {
		return SubjectLevel{SubjectID: subjectID, CorrectScore: 0, MaxScore: 1}
	}
	return SubjectLevel{
		SubjectID:    subjectID,
		CorrectScore: sumClamped(scores),
		MaxScore:     float64(taskCount),
	}
}

// NewTopicLevel sums the user's latest-per-task scores in the topic.
// The sum itself is not clamped again: each term is already in [0,1] so the
// total is naturally bounded by MaxScore.
func NewTopicLevel(topicID string, scores []float64, taskCount int) TopicLevel {
	return TopicLevel{
		TopicID:      topicID,
		CorrectScore: sumClamped(scores),
		MaxScore:     float64(taskCount),
	}
}

func sumClamped(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += score.Clamp(s)
	}
	return sum
}

// Percentage returns the level as a percentage rounded to one decimal.
func (l TopicLevel) Percentage() float64 { return percentage(l.CorrectScore, l.MaxScore) }

// Percentage returns the level as a percentage rounded to one decimal.
func (l SubjectLevel) Percentage() float64 { return percentage(l.CorrectScore, l.MaxScore) }

func percentage(correct, max float64) float64 {
	if max == 0 {
		return 0
	}
	return math.Round(correct*1000/max) / 10
}
