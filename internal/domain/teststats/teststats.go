// Package teststats computes reporting views over a closed test: response
// histograms per choice, per-user scores, and the score distribution.
// All functions are pure; the caller loads the rows and guarantees the test
// has actually ended.
package teststats

import (
	"errors"
	"math"
	"sort"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
)

var (
	// ErrTestNotYetHeld means statistics were requested for a test that has
	// no ended marker yet. The caller should wait for the test to close.
	ErrTestNotYetHeld = errors.New("test has not been held yet")

	// ErrInvalidMaxScore means a zero max score was passed to the detailed
	// per-user results.
	ErrInvalidMaxScore = errors.New("max score must not be zero")
)

// Answer is one selected choice in one session of the test.
type Answer struct {
	SessionID string `db:"session_id"`
	TaskID    string `db:"task_id"`
	ChoiceID  string `db:"choice_id"`
}

// ChoiceCount is the response histogram entry for a single choice.
type ChoiceCount struct {
	ChoiceID string `json:"choice_id"`
	Count    int    `json:"count"`
}

// ChoiceBreakdown is one choice of a task with its submission share.
type ChoiceBreakdown struct {
	ChoiceID   string  `json:"choice_id"`
	Text       string  `json:"text"`
	IsCorrect  bool    `json:"is_correct"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TaskBreakdown groups the choice shares of one task.
type TaskBreakdown struct {
	TaskID  string            `json:"task_id"`
	Choices []ChoiceBreakdown `json:"choices"`
}

// ScoreBucket is one bar of the score histogram.
type ScoreBucket struct {
	Score      int     `json:"score"`
	Amount     int     `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// UserResult is one user's total in the detailed results list.
type UserResult struct {
	Email      string  `json:"email"`
	Score      float64 `json:"score"`
	Percentage float64 `json:"percentage"`
}

// SessionTaskScore is a stored result row of one test session, as loaded by
// the store.
type SessionTaskScore struct {
	SessionID string  `db:"session_id"`
	UserEmail string  `db:"user_email"`
	TaskID    string  `db:"task_id"`
	Score     float64 `db:"score"`
}

// ChoiceHistogram counts submitted answers per choice across every session
// of the test.
func ChoiceHistogram(answers []Answer) []ChoiceCount {
	counts := make(map[string]int)
	for _, a := range answers {
		counts[a.ChoiceID]++
	}
	histogram := make([]ChoiceCount, 0, len(counts))
	for choiceID, count := range counts {
		histogram = append(histogram, ChoiceCount{ChoiceID: choiceID, Count: count})
	}
	sort.Slice(histogram, func(i, j int) bool { return histogram[i].ChoiceID < histogram[j].ChoiceID })
	return histogram
}

// TaskResults breaks every task down by choice: how many sessions picked it
// and which share of the task's answers that is. A task nobody answered
// keeps a zero percentage — the denominator is forced to 1 instead of
// producing NaN.
func TaskResults(choices []multiplechoice.Choice, answers []Answer) []TaskBreakdown {
	countPerChoice := make(map[string]int)
	totalPerTask := make(map[string]int)
	for _, a := range answers {
		countPerChoice[a.ChoiceID]++
		totalPerTask[a.TaskID]++
	}

	byTask := make(map[string][]ChoiceBreakdown)
	taskOrder := make([]string, 0)
	for _, c := range choices {
		total := totalPerTask[c.TaskID]
		if total == 0 {
			total = 1
		}
		if _, ok := byTask[c.TaskID]; !ok {
			taskOrder = append(taskOrder, c.TaskID)
		}
		byTask[c.TaskID] = append(byTask[c.TaskID], ChoiceBreakdown{
			ChoiceID:   c.ID,
			Text:       c.Text,
			IsCorrect:  c.IsCorrect,
			Count:      countPerChoice[c.ID],
			Percentage: float64(countPerChoice[c.ID]) / float64(total),
		})
	}

	breakdowns := make([]TaskBreakdown, 0, len(byTask))
	for _, taskID := range taskOrder {
		breakdowns = append(breakdowns, TaskBreakdown{TaskID: taskID, Choices: byTask[taskID]})
	}
	return breakdowns
}

// AverageScore is the test-wide average: every correct selection weighted by
// 1/numberOfCorrectChoices of its task, summed, then divided by the number
// of tasks and again by the number of sessions.
func AverageScore(choices []multiplechoice.Choice, answers []Answer, numberOfTasks, numberOfSessions int) float64 {
	if numberOfTasks == 0 || numberOfSessions == 0 {
		return 0
	}

	correctByChoice := make(map[string]bool)
	correctPerTask := make(map[string]int)
	taskOfChoice := make(map[string]string)
	for _, c := range choices {
		taskOfChoice[c.ID] = c.TaskID
		if c.IsCorrect {
			correctByChoice[c.ID] = true
			correctPerTask[c.TaskID]++
		}
	}

	var weightedCorrect float64
	for _, a := range answers {
		if !correctByChoice[a.ChoiceID] {
			continue
		}
		if n := correctPerTask[taskOfChoice[a.ChoiceID]]; n > 0 {
			weightedCorrect += 1 / float64(n)
		}
	}

	return weightedCorrect / float64(numberOfTasks) / float64(numberOfSessions)
}

// ScoreHistogram buckets each session's integer-rounded total score into
// 0..maxScore and reports the share of sessions per bucket.
func ScoreHistogram(rows []SessionTaskScore, maxScore, numberOfSessions int) []ScoreBucket {
	totals := make(map[string]float64)
	for _, row := range rows {
		totals[row.SessionID] += row.Score
	}

	amounts := make(map[int]int)
	for _, total := range totals {
		bucket := int(math.Round(total))
		if bucket < 0 {
			bucket = 0
		}
		if bucket > maxScore {
			bucket = maxScore
		}
		amounts[bucket]++
	}

	denominator := numberOfSessions
	if denominator == 0 {
		denominator = 1
	}

	buckets := make([]ScoreBucket, 0, maxScore+1)
	for s := 0; s <= maxScore; s++ {
		buckets = append(buckets, ScoreBucket{
			Score:      s,
			Amount:     amounts[s],
			Percentage: float64(amounts[s]) / float64(denominator),
		})
	}
	return buckets
}

// DetailedUserResults sums every user's session scores and reports them
// against the given max score, best first.
func DetailedUserResults(rows []SessionTaskScore, maxScore float64) ([]UserResult, error) {
	if maxScore == 0 {
		return nil, ErrInvalidMaxScore
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, row := range rows {
		if _, ok := totals[row.UserEmail]; !ok {
			order = append(order, row.UserEmail)
		}
		totals[row.UserEmail] += row.Score
	}

	results := make([]UserResult, 0, len(totals))
	for _, email := range order {
		results = append(results, UserResult{
			Email:      email,
			Score:      totals[email],
			Percentage: totals[email] / maxScore * 100,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Email < results[j].Email
		}
		return results[i].Score > results[j].Score
	})
	return results, nil
}
