// Package jobs runs the recurring maintenance work: closing practice
// sessions that were started but never ended.
package jobs

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/studyloop/backend/internal/store"
)

// SessionCleaner periodically stamps an end time on abandoned sessions so
// they stop counting as active.
type SessionCleaner struct {
	store     *store.Store
	logger    *slog.Logger
	maxAge    time.Duration
	scheduler *gocron.Scheduler
}

func NewSessionCleaner(s *store.Store, logger *slog.Logger, maxAge time.Duration) *SessionCleaner {
	return &SessionCleaner{
		store:     s,
		logger:    logger,
		maxAge:    maxAge,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the cleanup to run at the given interval in the
// background.
func (c *SessionCleaner) Start(interval time.Duration) error {
	if _, err := c.scheduler.Every(interval).Do(c.Run); err != nil {
		return err
	}
	c.scheduler.StartAsync()
	return nil
}

func (c *SessionCleaner) Stop() {
	c.scheduler.Stop()
}

// Run executes one cleanup sweep.
func (c *SessionCleaner) Run() {
	now := time.Now()
	closed, err := c.store.EndStaleSessions(now.Add(-c.maxAge), now)
	if err != nil {
		c.logger.Error("session cleanup failed", "error", err)
		return
	}
	if closed > 0 {
		c.logger.Info("closed stale sessions", "count", closed)
	}
}
