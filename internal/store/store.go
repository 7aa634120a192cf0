// Package store is the persistence layer. Queries are written with `?`
// placeholders and rebound per driver, so the same store runs on the pure-Go
// SQLite driver (tests, small deployments) and on postgres.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrConflict means a result insert hit the (session, task) unique
	// constraint and the fallback update could not take over the row either.
	ErrConflict = errors.New("conflicting result for session and task")
)

const schema = `
CREATE TABLE IF NOT EXISTS subjects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS topics (
    id TEXT PRIMARY KEY,
    subject_id TEXT NOT NULL REFERENCES subjects(id),
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS subtopics (
    id TEXT PRIMARY KEY,
    topic_id TEXT NOT NULL REFERENCES topics(id),
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    subtopic_id TEXT NOT NULL REFERENCES subtopics(id),
    question TEXT NOT NULL,
    is_testable BOOLEAN NOT NULL DEFAULT FALSE,
    deleted_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS choices (
    id TEXT PRIMARY KEY,
    task_id TEXT NOT NULL REFERENCES tasks(id),
    text TEXT NOT NULL,
    is_correct BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS subject_tests (
    id TEXT PRIMARY KEY,
    subject_id TEXT NOT NULL REFERENCES subjects(id),
    title TEXT NOT NULL,
    ended_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS test_tasks (
    test_id TEXT NOT NULL REFERENCES subject_tests(id),
    task_id TEXT NOT NULL REFERENCES tasks(id),
    PRIMARY KEY (test_id, task_id)
);

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id),
    test_id TEXT REFERENCES subject_tests(id),
    created_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS session_subtopics (
    session_id TEXT NOT NULL REFERENCES sessions(id),
    subtopic_id TEXT NOT NULL REFERENCES subtopics(id),
    PRIMARY KEY (session_id, subtopic_id)
);

CREATE TABLE IF NOT EXISTS task_answers (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id),
    task_id TEXT NOT NULL REFERENCES tasks(id),
    choice_id TEXT NOT NULL REFERENCES choices(id),
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
    id TEXT PRIMARY KEY,
    user_id TEXT REFERENCES users(id),
    task_id TEXT NOT NULL REFERENCES tasks(id),
    session_id TEXT REFERENCES sessions(id),
    score REAL NOT NULL,
    time_used REAL,
    revisit_date TIMESTAMP,
    is_manual BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (session_id, task_id)
);

CREATE INDEX IF NOT EXISTS idx_results_user_task ON results (user_id, task_id);
CREATE INDEX IF NOT EXISTS idx_task_answers_session ON task_answers (session_id);
`

type Store struct {
	db *sqlx.DB
}

// Open connects with the named driver ("sqlite" or "postgres") and applies
// the schema.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// The pure-Go driver opens a separate database per connection for
		// :memory: DSNs and is single-writer anyway.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// q rewrites `?` placeholders into whatever the connected driver expects.
func (s *Store) q(query string) string {
	return s.db.Rebind(query)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
