package service

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/studyloop/backend/internal/domain/result"
	"github.com/studyloop/backend/internal/store"
)

// ReviewService serves the next spaced-review task for an ongoing session.
// The clock and random source are injected so selection is reproducible in
// tests.
type ReviewService struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
	rng    *rand.Rand
}

func NewReviewService(s *store.Store, logger *slog.Logger, now func() time.Time, rng *rand.Rand) *ReviewService {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ReviewService{store: s, logger: logger, now: now, rng: rng}
}

// NextReviewTask picks the task most in need of review within the session's
// subtopics. A nil task means nothing is due, which is a normal outcome;
// the caller falls back to ordinary task selection.
func (s *ReviewService) NextReviewTask(userID, sessionID string) (*store.Task, error) {
	candidates, err := s.store.ReviewCandidates(userID, sessionID)
	if err != nil {
		return nil, err
	}

	picked := result.PickReviewTask(candidates, s.now(), s.rng)
	if picked == nil {
		return nil, nil
	}

	task, err := s.store.GetTask(picked.TaskID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("picked review task",
		"task_id", task.ID,
		"session_id", sessionID,
		"revisit_date", picked.RevisitDate,
	)
	return task, nil
}
