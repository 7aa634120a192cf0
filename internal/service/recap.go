package service

import (
	"log/slog"
	"time"

	"github.com/studyloop/backend/internal/domain/recap"
	"github.com/studyloop/backend/internal/store"
)

// RecapService ranks the topics a user should revisit soon.
type RecapService struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewRecapService(s *store.Store, logger *slog.Logger, now func() time.Time) *RecapService {
	if now == nil {
		now = time.Now
	}
	return &RecapService{store: s, logger: logger, now: now}
}

// RecommendedRecaps returns up to limit topics whose tasks come up for
// review inside the window, soonest first.
func (s *RecapService) RecommendedRecaps(userID string, window recap.Window, limit int) ([]recap.RecommendedRecap, error) {
	if err := window.Validate(limit); err != nil {
		return nil, err
	}

	from, to := window.Bounds(s.now())
	revisits, err := s.store.RecapRevisits(userID, from, to)
	if err != nil {
		return nil, err
	}

	topicIDs := make([]string, 0, len(revisits))
	seen := make(map[string]bool)
	for _, r := range revisits {
		if !seen[r.TopicID] {
			seen[r.TopicID] = true
			topicIDs = append(topicIDs, r.TopicID)
		}
	}

	counts, err := s.store.TaskCountByTopic(topicIDs)
	if err != nil {
		return nil, err
	}

	return recap.Rank(revisits, counts, limit), nil
}
