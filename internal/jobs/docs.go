// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(queue, "*/5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is NotificationRedeliveryJob, which moves dead-lettered
// notification jobs back onto the queue on a configurable schedule.
package jobs
