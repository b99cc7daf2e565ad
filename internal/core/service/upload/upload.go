package upload

import (
	"log/slog"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// Worker performs one media upload job end to end: local temp file in,
// remote object out, owning listing reconciled, requester notified.
type Worker struct {
	storage port.ObjectStorage
	repo    port.ListingRepository
	bus     port.EventBus
	logger  *slog.Logger
}

// NewWorker creates the upload worker whose Handle method gets registered
// with the job queue for media jobs
func NewWorker(storage port.ObjectStorage, repo port.ListingRepository, bus port.EventBus, logger *slog.Logger) *Worker {
	return &Worker{
		storage: storage,
		repo:    repo,
		bus:     bus,
		logger:  logger,
	}
}
