package port

import (
	"context"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// JobHandler handles one upload job. An error return marks the job failed;
// it never stops the queue.
type JobHandler func(ctx context.Context, job domain.UploadJob) error

// JobQueue is an interface to define deferred media work hand-off.
// Submit must not block beyond enqueue time (pooled implementation) or job
// execution time (inline implementation), and never fails the caller for a
// job whose execution later fails. Calling Drain again replaces the handler;
// the last registration wins. No ordering is guaranteed across jobs.
type JobQueue interface {
	Submit(job domain.UploadJob)
	Drain(handler JobHandler, concurrency int)
	Close(ctx context.Context) error
}
