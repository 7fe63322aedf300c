package jobs

import (
	"fmt"
	"log/slog"

	"neushop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cartMirrorJob *CartMirrorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(sessions ports.SessionStore, mirror ports.CartMirror, logger *slog.Logger) *JobManager {
	return &JobManager{
		cartMirrorJob: NewCartMirrorJob(sessions, mirror, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cartMirrorJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart mirror job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartMirrorJob.Stop()
}
