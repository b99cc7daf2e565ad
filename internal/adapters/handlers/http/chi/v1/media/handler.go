package media

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/cache"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// HandlerV1 is the handler for v1 media routes: upload intake and the
// read-through cache proxy in front of the object store
type HandlerV1 struct {
	queue        port.JobQueue
	storage      port.ObjectStorage
	cache        *cache.Disk
	resolver     port.IdentityResolver
	cfg          config.UploadConfig
	cacheControl string
	logger       *slog.Logger
}

// NewMediaHandlerV1 creates HandlerV1
func NewMediaHandlerV1(queue port.JobQueue, storage port.ObjectStorage, diskCache *cache.Disk, resolver port.IdentityResolver, cfg config.UploadConfig, cacheCfg config.CacheConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		queue:    queue,
		storage:  storage,
		cache:    diskCache,
		resolver: resolver,
		cfg:      cfg,
		// Remote ids are content-addressed, so served media never changes
		// under its URL and may be client-cached for the whole TTL.
		cacheControl: fmt.Sprintf("public, max-age=%d, immutable", int64(cacheCfg.ClientTTL.Seconds())),
		logger:       logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadMediaV1)

	return router
}
