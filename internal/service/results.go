// Package service wires the domain logic to the store: submissions, spaced
// review, recap recommendations, mastery levels and test statistics.
package service

import (
	"log/slog"
	"time"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
	"github.com/studyloop/backend/internal/domain/result"
	"github.com/studyloop/backend/internal/id"
	"github.com/studyloop/backend/internal/store"
)

// ResultsService records task outcomes: multiple-choice submissions it
// scores itself, externally scored submissions, and operator overrides.
type ResultsService struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewResultsService(s *store.Store, logger *slog.Logger, now func() time.Time) *ResultsService {
	if now == nil {
		now = time.Now
	}
	return &ResultsService{store: s, logger: logger, now: now}
}

// Submission is a scored outcome ready to hand back to the client.
type Submission struct {
	Result     *result.Result                   `json:"result"`
	Evaluation *multiplechoice.EvaluationResult `json:"evaluation,omitempty"`
}

// SubmitMultipleChoice evaluates the selected choices against the task's
// definition, stores one answer row per selection, and records the result.
// Resubmitting within the same session overwrites the earlier result row.
func (s *ResultsService) SubmitMultipleChoice(userID, sessionID, taskID string, selectedChoiceIDs []string, timeUsed *float64) (*Submission, error) {
	choices, err := s.store.ChoicesForTask(taskID)
	if err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, store.ErrNotFound
	}

	evaluation, err := multiplechoice.Evaluate(selectedChoiceIDs, choices)
	if err != nil {
		return nil, err
	}

	now := s.now()
	answers := make([]store.TaskAnswer, 0, len(selectedChoiceIDs))
	for _, choiceID := range selectedChoiceIDs {
		answers = append(answers, store.TaskAnswer{
			ID:        id.GenerateID(),
			SessionID: sessionID,
			TaskID:    taskID,
			ChoiceID:  choiceID,
			CreatedAt: now,
		})
	}
	if err := s.store.SaveTaskAnswers(answers); err != nil {
		return nil, err
	}

	r := result.New(userID, taskID, &sessionID, evaluation.Score, timeUsed, now)
	if err := s.store.SaveResult(r); err != nil {
		return nil, err
	}

	s.logger.Info("recorded submission",
		"task_id", taskID,
		"session_id", sessionID,
		"score", r.Score,
	)
	return &Submission{Result: r, Evaluation: &evaluation}, nil
}

// SubmitScore records an externally scored outcome, e.g. a flashcard the
// user rated themselves or a typing task checked by the client.
func (s *ResultsService) SubmitScore(userID, taskID string, sessionID *string, rawScore float64, timeUsed *float64) (*result.Result, error) {
	r := result.New(userID, taskID, sessionID, rawScore, timeUsed, s.now())
	if err := s.store.SaveResult(r); err != nil {
		return nil, err
	}
	return r, nil
}

// OverrideScore lets an operator hand-set the score of a stored result. The
// revisit date is recomputed and the row marked manual.
func (s *ResultsService) OverrideScore(resultID string, rawScore float64) (*result.Result, error) {
	r, err := s.store.GetResult(resultID)
	if err != nil {
		return nil, err
	}

	r.Rescore(rawScore, nil, s.now(), true)
	if err := s.store.UpdateResult(r); err != nil {
		return nil, err
	}

	s.logger.Info("score overridden", "result_id", resultID, "score", r.Score)
	return r, nil
}

// Overview sums a user's lifetime results.
func (s *ResultsService) Overview(userID string) (*store.ResultOverview, error) {
	return s.store.UserResultOverview(userID)
}
