package jobs

import (
	"fmt"
	"log/slog"

	"parcel/internal/notifications"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	redeliveryJob *NotificationRedeliveryJob
}

// NewJobManager creates a job manager wiring the notification queue into the
// redelivery sweep.
func NewJobManager(
	queue *notifications.Queue,
	redeliverySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		redeliveryJob: NewNotificationRedeliveryJob(queue, redeliverySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.redeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification redelivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.redeliveryJob.Stop()
}
