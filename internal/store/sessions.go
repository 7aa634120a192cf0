package store

import (
	"database/sql"
	"errors"
	"time"
)

// Session is one practice or test sitting. TestID is set only for sessions
// answering a subject test.
type Session struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	TestID    *string    `db:"test_id" json:"test_id,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	EndedAt   *time.Time `db:"ended_at" json:"ended_at,omitempty"`
}

// TaskAnswer is one selected choice inside a session. Multiple-choice
// submissions store one row per selection; the test histograms read them back.
type TaskAnswer struct {
	ID        string    `db:"id"`
	SessionID string    `db:"session_id"`
	TaskID    string    `db:"task_id"`
	ChoiceID  string    `db:"choice_id"`
	CreatedAt time.Time `db:"created_at"`
}

// SaveSession stores the session together with the subtopics it draws
// tasks from.
func (s *Store) SaveSession(session *Session, subtopicIDs []string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.q("INSERT INTO sessions (id, user_id, test_id, created_at, ended_at) VALUES (?, ?, ?, ?, ?)"),
		session.ID, session.UserID, session.TestID, session.CreatedAt, session.EndedAt)
	if err != nil {
		return err
	}

	for _, subtopicID := range subtopicIDs {
		_, err = tx.Exec(s.q("INSERT INTO session_subtopics (session_id, subtopic_id) VALUES (?, ?)"),
			session.ID, subtopicID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetSession(id string) (*Session, error) {
	var session Session
	err := s.db.Get(&session, s.q("SELECT id, user_id, test_id, created_at, ended_at FROM sessions WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) EndSession(id string, now time.Time) error {
	res, err := s.db.Exec(s.q("UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL"), now, id)
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

// EndStaleSessions stamps an end time on every open session started before
// the cutoff. Returns how many sessions were closed.
func (s *Store) EndStaleSessions(startedBefore, now time.Time) (int64, error) {
	res, err := s.db.Exec(s.q("UPDATE sessions SET ended_at = ? WHERE ended_at IS NULL AND created_at < ?"),
		now, startedBefore)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SaveTaskAnswers stores one row per selected choice, all or nothing.
func (s *Store) SaveTaskAnswers(answers []TaskAnswer) error {
	if len(answers) == 0 {
		return nil
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, a := range answers {
		_, err = tx.Exec(s.q("INSERT INTO task_answers (id, session_id, task_id, choice_id, created_at) VALUES (?, ?, ?, ?, ?)"),
			a.ID, a.SessionID, a.TaskID, a.ChoiceID, a.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
