// Package notifications implements the asynchronous pipeline that tells a
// courier about lifecycle events on their deliveries.
//
// Commands enqueue a Job describing the event; a bounded pool of workers
// renders the message for the job's kind and hands it to the configured
// Transport. Enqueueing never blocks the caller and a transport failure never
// reaches the request that produced the job: sends are retried with
// exponential backoff, and a job that exhausts its attempts is parked on a
// dead-letter list and logged for the operator. The redelivery job in
// internal/jobs periodically re-enqueues parked jobs.
//
// Every job carries an idempotency key derived from the delivery and the
// transition. Delivery is at-least-once, but a key that has already been
// processed is skipped, so a redelivered or duplicated job does not notify
// the courier twice.
package notifications
