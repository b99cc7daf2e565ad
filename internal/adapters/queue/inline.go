package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// InlineQueue runs every job to completion on the submitting goroutine.
// Used for lightweight deployments where a worker pool is not worth it.
type InlineQueue struct {
	logger *slog.Logger

	mu      sync.RWMutex
	handler port.JobHandler
}

// NewInlineQueue creates a new InlineQueue
func NewInlineQueue(logger *slog.Logger) *InlineQueue {
	return &InlineQueue{logger: logger}
}

// Submit executes the job before returning. Handler failures are logged and
// never propagated, so both queue implementations behave the same to callers.
func (q *InlineQueue) Submit(job domain.UploadJob) {
	q.mu.RLock()
	handler := q.handler
	q.mu.RUnlock()

	if handler == nil {
		q.logger.Error("job dropped, no handler registered", "owner", job.OwnerRecordID, "kind", job.Kind)
		return
	}

	if err := handler(context.Background(), job); err != nil {
		q.logger.Error("job failed", "owner", job.OwnerRecordID, "kind", job.Kind, "error", err)
	}
}

// Drain registers the handler. Concurrency is meaningless inline and ignored;
// calling Drain again replaces the handler.
func (q *InlineQueue) Drain(handler port.JobHandler, concurrency int) {
	q.mu.Lock()
	q.handler = handler
	q.mu.Unlock()
}

// Close is a no-op: there is nothing in flight beyond the caller's own Submit
func (q *InlineQueue) Close(ctx context.Context) error {
	return nil
}
