package service

import (
	"log/slog"

	"github.com/studyloop/backend/internal/domain/mastery"
	"github.com/studyloop/backend/internal/store"
)

// MasteryService aggregates stored scores into knowledge levels.
type MasteryService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewMasteryService(s *store.Store, logger *slog.Logger) *MasteryService {
	return &MasteryService{store: s, logger: logger}
}

// SubjectMastery is a subject's overall level together with its per-topic
// breakdown.
type SubjectMastery struct {
	Subject mastery.SubjectLevel `json:"subject"`
	Topics  []mastery.TopicLevel `json:"topics"`
}

// SubjectMastery computes the user's level in the subject from their
// latest-per-task scores. Topics the user never touched report 0 out of
// their task count.
func (s *MasteryService) SubjectMastery(userID, subjectID string) (*SubjectMastery, error) {
	scores, err := s.store.LatestTopicScores(userID, subjectID)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.TopicTaskCounts(subjectID)
	if err != nil {
		return nil, err
	}

	scoresByTopic := make(map[string][]float64)
	allScores := make([]float64, 0, len(scores))
	for _, sc := range scores {
		scoresByTopic[sc.TopicID] = append(scoresByTopic[sc.TopicID], sc.Score)
		allScores = append(allScores, sc.Score)
	}

	totalTasks := 0
	topics := make([]mastery.TopicLevel, 0, len(counts))
	for _, c := range counts {
		totalTasks += c.TaskCount
		topics = append(topics, mastery.NewTopicLevel(c.TopicID, scoresByTopic[c.TopicID], c.TaskCount))
	}

	return &SubjectMastery{
		Subject: mastery.NewSubjectLevel(subjectID, allScores, totalTasks),
		Topics:  topics,
	}, nil
}
