package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
	"github.com/studyloop/backend/internal/domain/teststats"
)

// TestEndedAt returns when the test was closed, nil while it is still open.
func (s *Store) TestEndedAt(testID string) (*time.Time, error) {
	var endedAt *time.Time
	err := s.db.Get(&endedAt, s.q("SELECT ended_at FROM subject_tests WHERE id = ?"), testID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return endedAt, nil
}

// TestChoices loads every choice of every task on the test, soft-deleted
// tasks included so historical statistics keep adding up.
func (s *Store) TestChoices(testID string) ([]multiplechoice.Choice, error) {
	choices := []multiplechoice.Choice{}
	err := s.db.Select(&choices, s.q(`
		SELECT c.id, c.task_id, c.text, c.is_correct
		FROM choices c
		JOIN test_tasks tt ON tt.task_id = c.task_id
		WHERE tt.test_id = ?`), testID)
	if err != nil {
		return nil, err
	}
	return choices, nil
}

// TestAnswers loads every submitted choice selection across the test's
// sessions.
func (s *Store) TestAnswers(testID string) ([]teststats.Answer, error) {
	answers := []teststats.Answer{}
	err := s.db.Select(&answers, s.q(`
		SELECT ta.session_id, ta.task_id, ta.choice_id
		FROM task_answers ta
		JOIN sessions se ON se.id = ta.session_id
		WHERE se.test_id = ?`), testID)
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// TestSessionScores loads every stored result of the test's sessions with
// the answering user's email.
func (s *Store) TestSessionScores(testID string) ([]teststats.SessionTaskScore, error) {
	rows := []teststats.SessionTaskScore{}
	err := s.db.Select(&rows, s.q(`
		SELECT r.session_id, u.email AS user_email, r.task_id, r.score
		FROM results r
		JOIN sessions se ON se.id = r.session_id
		JOIN users u ON u.id = se.user_id
		WHERE se.test_id = ?`), testID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SessionTopicScore is one session result row with the topic it belongs to,
// for the per-topic session roll-up.
type SessionTopicScore struct {
	TopicID   string  `db:"topic_id"`
	TopicName string  `db:"topic_name"`
	TaskID    string  `db:"task_id"`
	Question  string  `db:"question"`
	Score     float64 `db:"score"`
}

// SessionTopicScores loads the session's results joined to their topics.
func (s *Store) SessionTopicScores(sessionID string) ([]SessionTopicScore, error) {
	rows := []SessionTopicScore{}
	err := s.db.Select(&rows, s.q(`
		SELECT tp.id AS topic_id, tp.name AS topic_name, t.id AS task_id, t.question, r.score
		FROM results r
		JOIN tasks t ON t.id = r.task_id
		JOIN subtopics st ON st.id = t.subtopic_id
		JOIN topics tp ON tp.id = st.topic_id
		WHERE r.session_id = ?`), sessionID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) CountTestSessions(testID string) (int, error) {
	var count int
	err := s.db.Get(&count, s.q("SELECT COUNT(id) FROM sessions WHERE test_id = ?"), testID)
	return count, err
}

func (s *Store) CountTestTasks(testID string) (int, error) {
	var count int
	err := s.db.Get(&count, s.q("SELECT COUNT(task_id) FROM test_tasks WHERE test_id = ?"), testID)
	return count, err
}
