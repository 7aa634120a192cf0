// Package multiplechoice evaluates submitted choice selections against the
// authoritative correct-answer set of a task.
package multiplechoice

import "errors"

// ErrInvalidTaskDefinition means a task has no correct choice at all.
// That is a content bug, not a user error, and there is no sensible score
// for it.
var ErrInvalidTaskDefinition = errors.New("multiple-choice task has no correct choices")

// Choice is one selectable option of a task. Choices are kept around after
// soft-deletion so historical submissions can still be scored.
type Choice struct {
	ID        string `json:"id" db:"id"`
	TaskID    string `json:"task_id" db:"task_id"`
	Text      string `json:"text" db:"text"`
	IsCorrect bool   `json:"is_correct" db:"is_correct"`
}

// ChoiceResult labels a single choice in an evaluation: every selected
// choice appears once, and every correct choice the user missed is appended
// after the selections.
type ChoiceResult struct {
	ChoiceID  string `json:"choice_id"`
	IsCorrect bool   `json:"is_correct"`
}

// EvaluationResult is the ephemeral outcome of evaluating one submission.
// It is consumed to build a stored result, never persisted itself.
type EvaluationResult struct {
	Score    float64        `json:"score"`
	Progress float64        `json:"progress"`
	Choices  []ChoiceResult `json:"choices"`
}

// Evaluate scores a submission against the correct choices of a task.
//
// The score is the fraction of correct choices the user selected. Selecting
// a wrong choice never subtracts (no negative marking); it just fails to add.
// Selected choices come first in submission order, then the missed correct
// ones, so the same submission always produces the same result.
func Evaluate(selected []string, choices []Choice) (EvaluationResult, error) {
	missing := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if c.IsCorrect {
			missing = append(missing, c)
		}
	}
	totalCorrect := len(missing)
	if totalCorrect == 0 {
		return EvaluationResult{}, ErrInvalidTaskDefinition
	}

	numberOfCorrect := 0
	results := make([]ChoiceResult, 0, len(selected)+totalCorrect)

	for _, choiceID := range selected {
		idx := -1
		for i, m := range missing {
			if m.ID == choiceID {
				idx = i
				break
			}
		}
		if idx >= 0 {
			numberOfCorrect++
			missing = append(missing[:idx], missing[idx+1:]...)
			results = append(results, ChoiceResult{ChoiceID: choiceID, IsCorrect: true})
		} else {
			results = append(results, ChoiceResult{ChoiceID: choiceID, IsCorrect: false})
		}
	}
	for _, m := range missing {
		results = append(results, ChoiceResult{ChoiceID: m.ID, IsCorrect: true})
	}

	score := float64(numberOfCorrect) / float64(totalCorrect)
	return EvaluationResult{
		Score:    score,
		Progress: score * 100,
		Choices:  results,
	}, nil
}
