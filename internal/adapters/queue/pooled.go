package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// PooledQueue is an unbounded in-memory FIFO drained by a fixed-size pool of
// worker goroutines. Jobs are not persisted; a crash loses whatever is queued.
// No ordering is guaranteed across jobs once more than one worker runs.
type PooledQueue struct {
	logger *slog.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	jobs     []domain.UploadJob
	handler  port.JobHandler
	draining bool
	closed   bool
	wg       sync.WaitGroup
}

// NewPooledQueue creates a new PooledQueue
func NewPooledQueue(logger *slog.Logger) *PooledQueue {
	q := &PooledQueue{logger: logger}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Submit enqueues the job and returns immediately
func (q *PooledQueue) Submit(job domain.UploadJob) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.logger.Error("job dropped", "owner", job.OwnerRecordID, "kind", job.Kind,
			"error", domain.ErrQueueClosed)
		return
	}

	q.jobs = append(q.jobs, job)
	q.cond.Signal()
}

// Drain registers the handler and starts the worker pool on first call.
// A later call only swaps the handler; the last registration wins and the
// pool size stays what the first call asked for.
func (q *PooledQueue) Drain(handler port.JobHandler, concurrency int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handler = handler
	if q.draining || q.closed {
		return
	}
	q.draining = true

	if concurrency < 1 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		q.wg.Add(1)
		go q.work()
	}
}

func (q *PooledQueue) work() {
	defer q.wg.Done()

	for {
		q.mu.Lock()
		for len(q.jobs) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.jobs) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		handler := q.handler
		q.mu.Unlock()

		q.run(handler, job)
	}
}

// run isolates one job execution so a handler panic or error never takes the
// worker down with it.
func (q *PooledQueue) run(handler port.JobHandler, job domain.UploadJob) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("job handler panicked", "owner", job.OwnerRecordID, "kind", job.Kind, "panic", r)
		}
	}()

	if handler == nil {
		q.logger.Error("job dropped, no handler registered", "owner", job.OwnerRecordID, "kind", job.Kind)
		return
	}

	if err := handler(context.Background(), job); err != nil {
		q.logger.Error("job failed", "owner", job.OwnerRecordID, "kind", job.Kind, "error", err)
	}
}

// Close stops intake and waits for the pool to finish the backlog, or for ctx
func (q *PooledQueue) Close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
