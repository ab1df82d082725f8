package cmd

// Config carries everything the composition root needs to wire the service:
// the HTTP listener, the postgres connection, the SMTP account notifications
// are sent from, and the notification queue tuning.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	QueueWorkers     int
	QueueCapacity    int
	QueueMaxAttempts int

	RedeliverySchedule string
}
