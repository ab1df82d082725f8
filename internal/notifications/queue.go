package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// QueueConfig tunes the in-process notification queue.
// Zero values fall back to the defaults below.
type QueueConfig struct {
	// Workers is the number of goroutines processing jobs.
	Workers int

	// Capacity bounds the number of jobs waiting to be processed.
	// An enqueue that would exceed it dead-letters the job instead of blocking.
	Capacity int

	// MaxAttempts bounds how many times one job is handed to the transport
	// before it is dead-lettered.
	MaxAttempts int

	// InitialBackoff is the delay before the first retry; subsequent retries
	// back off exponentially.
	InitialBackoff time.Duration
}

const (
	defaultWorkers        = 4
	defaultCapacity       = 256
	defaultMaxAttempts    = 5
	defaultInitialBackoff = 500 * time.Millisecond
)

func (c QueueConfig) withDefaults() QueueConfig {
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	if c.Capacity <= 0 {
		c.Capacity = defaultCapacity
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = defaultInitialBackoff
	}
	return c
}

// Queue accepts notification jobs and processes them out of band.
// It owns every job from Enqueue until a worker completes or dead-letters it.
type Queue struct {
	cfg       QueueConfig
	transport Transport
	logger    *slog.Logger

	jobs chan Job
	wg   sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	processed map[string]struct{}
	dead      []Job
}

// NewQueue creates a queue delivering through the given transport.
// Call Start to launch the workers.
func NewQueue(transport Transport, logger *slog.Logger, cfg QueueConfig) *Queue {
	cfg = cfg.withDefaults()
	return &Queue{
		cfg:       cfg,
		transport: transport,
		logger:    logger.With("component", "notification_queue"),
		jobs:      make(chan Job, cfg.Capacity),
		processed: make(map[string]struct{}),
	}
}

// Start launches the worker pool. Workers exit when ctx is canceled or the
// queue is closed.
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx)
	}
	q.logger.InfoContext(ctx, "notification workers started", "workers", q.cfg.Workers)
}

// Enqueue hands a job to the queue and returns immediately.
// The caller never waits for, and never learns about, delivery of the
// notification. If the queue is full or already closed the job is
// dead-lettered for the redelivery sweep rather than blocking the request.
func (q *Queue) Enqueue(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.logger.Warn("queue closed, parking job for redelivery",
			"kind", job.Kind.String(), "key", job.IdempotencyKey)
		q.parkLocked(job)
		return
	}

	select {
	case q.jobs <- job:
	default:
		q.logger.Warn("queue full, parking job for redelivery",
			"kind", job.Kind.String(), "key", job.IdempotencyKey)
		q.parkLocked(job)
	}
}

// Close stops accepting jobs and waits for in-flight work to finish.
// Jobs enqueued after Close are parked for the redelivery sweep.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.wg.Wait()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()
	q.wg.Wait()
}

// DeadLetters returns a snapshot of jobs that exhausted their attempts or
// were parked because the queue was full.
func (q *Queue) DeadLetters() []Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Job, len(q.dead))
	copy(out, q.dead)
	return out
}

// RedeliverFailed re-enqueues every dead-lettered job and returns how many
// were handed back to the workers. Jobs that do not fit in the queue stay
// parked for the next sweep.
func (q *Queue) RedeliverFailed() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return 0
	}

	parked := q.dead
	q.dead = nil

	redelivered := 0
	for _, job := range parked {
		select {
		case q.jobs <- job:
			redelivered++
		default:
			q.parkLocked(job)
		}
	}
	return redelivered
}

func (q *Queue) worker(ctx context.Context) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-q.jobs:
			if !ok {
				return
			}
			q.process(ctx, job)
		}
	}
}

func (q *Queue) process(ctx context.Context, job Job) {
	if q.alreadyProcessed(job.IdempotencyKey) {
		q.logger.InfoContext(ctx, "skipping duplicate job",
			"kind", job.Kind.String(), "key", job.IdempotencyKey)
		return
	}

	subject, body, err := renderJob(job)
	if err != nil {
		// Rendering is deterministic, retrying cannot help.
		q.logger.ErrorContext(ctx, "job dropped: render failed",
			"kind", job.Kind.String(), "key", job.IdempotencyKey, "error", err)
		return
	}

	send := func() error {
		return q.transport.Send(ctx, job.Payload.CourierEmail, subject, body)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = q.cfg.InitialBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(q.cfg.MaxAttempts-1)), ctx)

	if err := backoff.Retry(send, policy); err != nil {
		q.logger.ErrorContext(ctx, "job dead-lettered: attempts exhausted",
			"kind", job.Kind.String(), "key", job.IdempotencyKey,
			"attempts", q.cfg.MaxAttempts, "error", err)
		q.park(job)
		return
	}

	q.markProcessed(job.IdempotencyKey)
	q.logger.InfoContext(ctx, "notification sent",
		"kind", job.Kind.String(), "key", job.IdempotencyKey, "to", job.Payload.CourierEmail)
}

func (q *Queue) alreadyProcessed(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.processed[key]
	return ok
}

func (q *Queue) markProcessed(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.processed[key] = struct{}{}
}

func (q *Queue) park(job Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.parkLocked(job)
}

func (q *Queue) parkLocked(job Job) {
	q.dead = append(q.dead, job)
}
