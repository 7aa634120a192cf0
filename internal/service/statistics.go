package service

import (
	"log/slog"
	"sort"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
	"github.com/studyloop/backend/internal/domain/teststats"
	"github.com/studyloop/backend/internal/store"
	"github.com/studyloop/backend/internal/worker"
)

const statsWorkers = 4

// StatisticsService computes reporting views over closed subject tests.
type StatisticsService struct {
	store  *store.Store
	logger *slog.Logger
}

func NewStatisticsService(s *store.Store, logger *slog.Logger) *StatisticsService {
	return &StatisticsService{store: s, logger: logger}
}

// TestStatistics is the full report over one closed test.
type TestStatistics struct {
	TestID           string                    `json:"test_id"`
	NumberOfSessions int                       `json:"number_of_sessions"`
	NumberOfTasks    int                       `json:"number_of_tasks"`
	AverageScore     float64                   `json:"average_score"`
	TaskResults      []teststats.TaskBreakdown `json:"task_results"`
	ScoreHistogram   []teststats.ScoreBucket   `json:"score_histogram"`
}

// TestStatistics builds the report for a closed test. A test that has not
// ended yet yields teststats.ErrTestNotYetHeld.
func (s *StatisticsService) TestStatistics(testID string) (*TestStatistics, error) {
	endedAt, err := s.store.TestEndedAt(testID)
	if err != nil {
		return nil, err
	}
	if endedAt == nil {
		return nil, teststats.ErrTestNotYetHeld
	}

	choices, err := s.store.TestChoices(testID)
	if err != nil {
		return nil, err
	}
	answers, err := s.store.TestAnswers(testID)
	if err != nil {
		return nil, err
	}
	numberOfSessions, err := s.store.CountTestSessions(testID)
	if err != nil {
		return nil, err
	}
	numberOfTasks, err := s.store.CountTestTasks(testID)
	if err != nil {
		return nil, err
	}
	sessionScores, err := s.store.TestSessionScores(testID)
	if err != nil {
		return nil, err
	}

	return &TestStatistics{
		TestID:           testID,
		NumberOfSessions: numberOfSessions,
		NumberOfTasks:    numberOfTasks,
		AverageScore:     teststats.AverageScore(choices, answers, numberOfTasks, numberOfSessions),
		TaskResults:      s.taskBreakdowns(choices, answers),
		ScoreHistogram:   teststats.ScoreHistogram(sessionScores, numberOfTasks, numberOfSessions),
	}, nil
}

// taskBreakdowns fans the per-task histogram computation out over a worker
// pool; tests can carry a lot of tasks and each breakdown is independent.
func (s *StatisticsService) taskBreakdowns(choices []multiplechoice.Choice, answers []teststats.Answer) []teststats.TaskBreakdown {
	choicesByTask := make(map[string][]multiplechoice.Choice)
	for _, c := range choices {
		choicesByTask[c.TaskID] = append(choicesByTask[c.TaskID], c)
	}
	answersByTask := make(map[string][]teststats.Answer)
	for _, a := range answers {
		answersByTask[a.TaskID] = append(answersByTask[a.TaskID], a)
	}

	pool := worker.NewPool[teststats.TaskBreakdown](statsWorkers, len(choicesByTask))
	for taskID, taskChoices := range choicesByTask {
		taskID, taskChoices := taskID, taskChoices
		pool.Submit(taskID, func() teststats.TaskBreakdown {
			return teststats.TaskResults(taskChoices, answersByTask[taskID])[0]
		})
	}
	pool.Close()

	breakdowns := make([]teststats.TaskBreakdown, 0, len(choicesByTask))
	for res := range pool.Results() {
		breakdowns = append(breakdowns, res.Output)
	}
	sort.Slice(breakdowns, func(i, j int) bool { return breakdowns[i].TaskID < breakdowns[j].TaskID })
	return breakdowns
}

// DetailedUserResults lists every participant's total against the test's
// maximum score, best first.
func (s *StatisticsService) DetailedUserResults(testID string) ([]teststats.UserResult, error) {
	endedAt, err := s.store.TestEndedAt(testID)
	if err != nil {
		return nil, err
	}
	if endedAt == nil {
		return nil, teststats.ErrTestNotYetHeld
	}

	numberOfTasks, err := s.store.CountTestTasks(testID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.TestSessionScores(testID)
	if err != nil {
		return nil, err
	}

	return teststats.DetailedUserResults(rows, float64(numberOfTasks))
}

// SessionTopicResults rolls one test session's scores up per topic.
func (s *StatisticsService) SessionTopicResults(sessionID string) ([]teststats.TopicResult, error) {
	rows, err := s.store.SessionTopicScores(sessionID)
	if err != nil {
		return nil, err
	}

	byTopic := make(map[string][]teststats.TaskScore)
	names := make(map[string]string)
	order := make([]string, 0)
	for _, row := range rows {
		if _, ok := byTopic[row.TopicID]; !ok {
			order = append(order, row.TopicID)
		}
		names[row.TopicID] = row.TopicName
		byTopic[row.TopicID] = append(byTopic[row.TopicID], teststats.TaskScore{
			TaskID:   row.TaskID,
			Question: row.Question,
			Score:    row.Score,
		})
	}

	results := make([]teststats.TopicResult, 0, len(order))
	for _, topicID := range order {
		results = append(results, teststats.NewTopicResult(topicID, names[topicID], byTopic[topicID]))
	}
	return results, nil
}
