package queue

import (
	"log/slog"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

const (
	ModeInline = "inline"
	ModePooled = "pooled"
)

// New creates the job queue implementation selected by configuration.
// Callers depend only on port.JobQueue and stay agnostic to which mode runs.
func New(cfg config.QueueConfig, logger *slog.Logger) port.JobQueue {
	if cfg.Mode == ModeInline {
		return NewInlineQueue(logger)
	}
	return NewPooledQueue(logger)
}
