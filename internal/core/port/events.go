package port

import (
	"context"
	"net/http"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// EventBus is an interface to define real-time event fan-out. Emission is
// best-effort and non-blocking: delivery only happens to currently connected
// clients and failures are logged, never returned to the caller.
type EventBus interface {
	EmitToAll(event domain.Event)
	EmitToUser(userID int64, event domain.Event)
	EmitToAdmins(event domain.Event)
}

// EventConsumer is an interface to define an event broker consumer (nats, kafka, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}

// IdentityResolver is an interface to define identity resolution at
// connection time. The session/token validation itself happens upstream;
// a nil identity means the request is a guest.
type IdentityResolver interface {
	Resolve(r *http.Request) *domain.Identity
}
