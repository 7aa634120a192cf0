package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/studyloop/backend/internal/domain/multiplechoice"
)

// The content tables are the read model this service consumes: subjects down
// to choices are authored elsewhere and mirrored here.

type Subject struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Topic struct {
	ID        string `db:"id" json:"id"`
	SubjectID string `db:"subject_id" json:"subject_id"`
	Name      string `db:"name" json:"name"`
}

type Subtopic struct {
	ID      string `db:"id" json:"id"`
	TopicID string `db:"topic_id" json:"topic_id"`
	Name    string `db:"name" json:"name"`
}

type Task struct {
	ID         string     `db:"id" json:"id"`
	SubtopicID string     `db:"subtopic_id" json:"subtopic_id"`
	Question   string     `db:"question" json:"question"`
	IsTestable bool       `db:"is_testable" json:"is_testable"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

type User struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
}

type SubjectTest struct {
	ID        string     `db:"id" json:"id"`
	SubjectID string     `db:"subject_id" json:"subject_id"`
	Title     string     `db:"title" json:"title"`
	EndedAt   *time.Time `db:"ended_at" json:"ended_at,omitempty"`
}

func (s *Store) SaveSubject(subject *Subject) error {
	_, err := s.db.Exec(s.q("INSERT INTO subjects (id, name) VALUES (?, ?)"), subject.ID, subject.Name)
	return err
}

func (s *Store) SaveTopic(topic *Topic) error {
	_, err := s.db.Exec(s.q("INSERT INTO topics (id, subject_id, name) VALUES (?, ?, ?)"),
		topic.ID, topic.SubjectID, topic.Name)
	return err
}

func (s *Store) SaveSubtopic(subtopic *Subtopic) error {
	_, err := s.db.Exec(s.q("INSERT INTO subtopics (id, topic_id, name) VALUES (?, ?, ?)"),
		subtopic.ID, subtopic.TopicID, subtopic.Name)
	return err
}

func (s *Store) SaveTask(task *Task) error {
	_, err := s.db.Exec(s.q("INSERT INTO tasks (id, subtopic_id, question, is_testable, deleted_at) VALUES (?, ?, ?, ?, ?)"),
		task.ID, task.SubtopicID, task.Question, task.IsTestable, task.DeletedAt)
	return err
}

func (s *Store) GetTask(id string) (*Task, error) {
	var task Task
	err := s.db.Get(&task, s.q("SELECT id, subtopic_id, question, is_testable, deleted_at FROM tasks WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// SoftDeleteTask stamps the task deleted. Its results and its place in every
// historical aggregate stay.
func (s *Store) SoftDeleteTask(id string, now time.Time) error {
	res, err := s.db.Exec(s.q("UPDATE tasks SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL"), now, id)
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

func (s *Store) SaveChoice(choice *multiplechoice.Choice) error {
	_, err := s.db.Exec(s.q("INSERT INTO choices (id, task_id, text, is_correct) VALUES (?, ?, ?, ?)"),
		choice.ID, choice.TaskID, choice.Text, choice.IsCorrect)
	return err
}

func (s *Store) ChoicesForTask(taskID string) ([]multiplechoice.Choice, error) {
	choices := []multiplechoice.Choice{}
	err := s.db.Select(&choices, s.q("SELECT id, task_id, text, is_correct FROM choices WHERE task_id = ?"), taskID)
	if err != nil {
		return nil, err
	}
	return choices, nil
}

func (s *Store) SaveUser(user *User) error {
	_, err := s.db.Exec(s.q("INSERT INTO users (id, email) VALUES (?, ?)"), user.ID, user.Email)
	return err
}

func (s *Store) SaveSubjectTest(test *SubjectTest) error {
	_, err := s.db.Exec(s.q("INSERT INTO subject_tests (id, subject_id, title, ended_at) VALUES (?, ?, ?, ?)"),
		test.ID, test.SubjectID, test.Title, test.EndedAt)
	return err
}

func (s *Store) AddTestTask(testID, taskID string) error {
	_, err := s.db.Exec(s.q("INSERT INTO test_tasks (test_id, task_id) VALUES (?, ?)"), testID, taskID)
	return err
}

// EndTest closes the test, making its statistics available.
func (s *Store) EndTest(id string, now time.Time) error {
	res, err := s.db.Exec(s.q("UPDATE subject_tests SET ended_at = ? WHERE id = ? AND ended_at IS NULL"), now, id)
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
