package jobs

import (
	"context"
	"log/slog"

	"parcel/internal/notifications"

	"github.com/robfig/cron/v3"
)

// NotificationRedeliveryJob periodically sweeps the notification dead-letter
// buffer back onto the queue so transient mail outages heal without manual
// intervention.
type NotificationRedeliveryJob struct {
	queue    *notifications.Queue
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRedeliveryJob creates a job that redelivers dead-lettered
// notifications on the given cron schedule.
func NewNotificationRedeliveryJob(
	queue *notifications.Queue,
	schedule string,
	logger *slog.Logger,
) *NotificationRedeliveryJob {
	return &NotificationRedeliveryJob{
		queue:    queue,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "notification_redelivery_job"),
	}
}

// Start begins the redelivery sweep on the configured schedule.
func (j *NotificationRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if redelivered := j.queue.RedeliverFailed(); redelivered > 0 {
			j.logger.InfoContext(ctx, "Redelivered dead-lettered notifications", "count", redelivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started", "schedule", j.schedule)
	return nil
}

// Stop stops the redelivery job.
func (j *NotificationRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}
