package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/studyloop/backend/internal/domain/recap"
	"github.com/studyloop/backend/internal/domain/result"
)

// latestResults restricts a results join to the newest row per task for one
// user. Everything that reads "what does the user know" goes through this.
const latestResults = `
	JOIN (
		SELECT task_id, MAX(created_at) AS created_at
		FROM results
		WHERE user_id = ?
		GROUP BY task_id
	) latest ON latest.task_id = r.task_id AND latest.created_at = r.created_at
`

// ResultOverview is a user's lifetime totals across every stored result.
type ResultOverview struct {
	ResultCount int     `db:"result_count" json:"result_count"`
	TotalScore  float64 `db:"total_score" json:"total_score"`
}

// TopicScore is one latest-per-task score with the topic it belongs to.
type TopicScore struct {
	TopicID string  `db:"topic_id"`
	Score   float64 `db:"score"`
}

// TopicTaskCount is the number of tasks ever created in a topic, soft-deleted
// ones included.
type TopicTaskCount struct {
	TopicID   string `db:"topic_id"`
	TaskCount int    `db:"task_count"`
}

// SaveResult inserts the result. When the (session, task) pair already holds
// a row, the insert is retried once as an update of that row; if the retry
// fails too, the caller gets ErrConflict.
func (s *Store) SaveResult(r *result.Result) error {
	err := s.insertResult(r)
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}

	if r.SessionID == nil {
		return ErrConflict
	}
	existing, lookupErr := s.ResultForSessionTask(*r.SessionID, r.TaskID)
	if lookupErr != nil {
		return ErrConflict
	}
	r.ID = existing.ID
	if updateErr := s.UpdateResult(r); updateErr != nil {
		return ErrConflict
	}
	return nil
}

func (s *Store) insertResult(r *result.Result) error {
	_, err := s.db.Exec(s.q(`
		INSERT INTO results (id, user_id, task_id, session_id, score, time_used, revisit_date, is_manual, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		r.ID, r.UserID, r.TaskID, r.SessionID, r.Score, r.TimeUsed, r.RevisitDate, r.IsManual, r.CreatedAt,
	)
	return err
}

// UpdateResult overwrites the stored row by id.
func (s *Store) UpdateResult(r *result.Result) error {
	res, err := s.db.Exec(s.q(`
		UPDATE results
		SET score = ?, time_used = ?, revisit_date = ?, is_manual = ?, created_at = ?
		WHERE id = ?`),
		r.Score, r.TimeUsed, r.RevisitDate, r.IsManual, r.CreatedAt, r.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetResult(id string) (*result.Result, error) {
	var r result.Result
	err := s.db.Get(&r, s.q(`
		SELECT id, user_id, task_id, session_id, score, time_used, revisit_date, is_manual, created_at
		FROM results WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ResultForSessionTask fetches the single row a (session, task) pair may hold.
func (s *Store) ResultForSessionTask(sessionID, taskID string) (*result.Result, error) {
	var r result.Result
	err := s.db.Get(&r, s.q(`
		SELECT id, user_id, task_id, session_id, score, time_used, revisit_date, is_manual, created_at
		FROM results WHERE session_id = ? AND task_id = ?`), sessionID, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UserResultOverview sums every result the user ever recorded, resubmissions
// included.
func (s *Store) UserResultOverview(userID string) (*ResultOverview, error) {
	var overview ResultOverview
	err := s.db.Get(&overview, s.q(`
		SELECT COUNT(id) AS result_count, COALESCE(SUM(score), 0) AS total_score
		FROM results WHERE user_id = ?`), userID)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

// ReviewCandidates loads the latest-per-task results eligible for spaced
// review in the given session: tasks inside the session's subtopics that are
// not soft-deleted, not test material, not already attempted in this session,
// and carry a revisit date.
func (s *Store) ReviewCandidates(userID, sessionID string) ([]result.ReviewCandidate, error) {
	candidates := []result.ReviewCandidate{}
	err := s.db.Select(&candidates, s.q(`
		SELECT r.task_id, r.revisit_date, r.created_at, r.session_id
		FROM results r`+latestResults+`
		JOIN tasks t ON t.id = r.task_id
		WHERE r.user_id = ?
		  AND r.revisit_date IS NOT NULL
		  AND t.deleted_at IS NULL
		  AND t.is_testable = FALSE
		  AND t.subtopic_id IN (SELECT subtopic_id FROM session_subtopics WHERE session_id = ?)
		  AND r.task_id NOT IN (SELECT task_id FROM results WHERE session_id = ?)`),
		userID, userID, sessionID, sessionID,
	)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// RecapRevisits loads the latest-per-task results of non-testable tasks whose
// revisit date falls inside [from, to], joined to topic and subject.
func (s *Store) RecapRevisits(userID string, from, to time.Time) ([]recap.TaskRevisit, error) {
	revisits := []recap.TaskRevisit{}
	err := s.db.Select(&revisits, s.q(`
		SELECT tp.id AS topic_id, tp.name AS topic_name,
		       su.id AS subject_id, su.name AS subject_name,
		       r.score, r.revisit_date
		FROM results r`+latestResults+`
		JOIN tasks t ON t.id = r.task_id
		JOIN subtopics st ON st.id = t.subtopic_id
		JOIN topics tp ON tp.id = st.topic_id
		JOIN subjects su ON su.id = tp.subject_id
		WHERE r.user_id = ?
		  AND t.deleted_at IS NULL
		  AND t.is_testable = FALSE
		  AND r.revisit_date IS NOT NULL
		  AND r.revisit_date >= ? AND r.revisit_date <= ?`),
		userID, userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	return revisits, nil
}

// TaskCountByTopic counts every task ever created per topic. Soft-deleted
// tasks stay in the count: the aggregate score divides by them.
func (s *Store) TaskCountByTopic(topicIDs []string) (map[string]int, error) {
	if len(topicIDs) == 0 {
		return map[string]int{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT tp.id AS topic_id, COUNT(t.id) AS task_count
		FROM topics tp
		JOIN subtopics st ON st.topic_id = tp.id
		JOIN tasks t ON t.subtopic_id = st.id
		WHERE tp.id IN (?)
		GROUP BY tp.id`, topicIDs)
	if err != nil {
		return nil, err
	}

	counts := []TopicTaskCount{}
	if err := s.db.Select(&counts, s.q(query), args...); err != nil {
		return nil, err
	}

	byTopic := make(map[string]int, len(counts))
	for _, c := range counts {
		byTopic[c.TopicID] = c.TaskCount
	}
	return byTopic, nil
}

// LatestTopicScores loads the user's latest-per-task scores across a subject,
// tagged with their topic. Soft-deleted tasks are included: knowledge once
// tested still counts toward the level.
func (s *Store) LatestTopicScores(userID, subjectID string) ([]TopicScore, error) {
	scores := []TopicScore{}
	err := s.db.Select(&scores, s.q(`
		SELECT tp.id AS topic_id, r.score
		FROM results r`+latestResults+`
		JOIN tasks t ON t.id = r.task_id
		JOIN subtopics st ON st.id = t.subtopic_id
		JOIN topics tp ON tp.id = st.topic_id
		WHERE r.user_id = ? AND tp.subject_id = ?`),
		userID, userID, subjectID,
	)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// TopicTaskCounts counts tasks per topic across a subject, soft-deleted ones
// included.
func (s *Store) TopicTaskCounts(subjectID string) ([]TopicTaskCount, error) {
	counts := []TopicTaskCount{}
	err := s.db.Select(&counts, s.q(`
		SELECT tp.id AS topic_id, COUNT(t.id) AS task_count
		FROM topics tp
		LEFT JOIN subtopics st ON st.topic_id = tp.id
		LEFT JOIN tasks t ON t.subtopic_id = st.id
		WHERE tp.subject_id = ?
		GROUP BY tp.id`),
		subjectID,
	)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
