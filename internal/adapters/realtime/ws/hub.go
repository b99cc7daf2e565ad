package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
)

// RoomAdmin is the broadcast group for administrator connections
const RoomAdmin = "admin"

// UserRoom returns the personal room name for a user id
func UserRoom(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// Hub is the room registry and fan-out point for all live connections.
// It implements port.EventBus. One hub exists per process, constructed in
// main and injected into everything that publishes.
type Hub struct {
	cfg    config.WSConfig
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client // room -> clientID -> client
}

// NewHub creates a new Hub
func NewHub(cfg config.WSConfig, logger *slog.Logger) *Hub {
	return &Hub{
		cfg:     cfg,
		logger:  logger,
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
	}
}

// Register adds a connection. A non-nil identity came from the validated
// session/token and binds the user room (plus admin for administrators);
// nil keeps the connection a guest with no room membership.
func (h *Hub) Register(client *Client, identity *domain.Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.id] = client
	if identity != nil {
		client.identity = identity
		client.serverBound = true
		h.joinRooms(client, identity)
	}

	h.logger.Info("client connected", "clientID", client.id, "guest", identity == nil)
}

// Unregister removes the connection from every room and closes its send
// channel. Safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.id]; !ok {
		return
	}
	h.leaveRooms(client)
	delete(h.clients, client.id)
	close(client.send)

	h.logger.Info("client disconnected", "clientID", client.id)
}

// Bind rebinds a connection's rooms from a late identity. Client-asserted
// identities (the "setup" message) are only honored while the connection has
// no server-derived identity; a validated session always wins over whatever
// the client claims.
func (h *Hub) Bind(client *Client, identity *domain.Identity, clientAsserted bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.id]; !ok {
		return
	}
	if clientAsserted && client.serverBound {
		h.logger.Warn("ignoring client-asserted identity on authenticated connection",
			"clientID", client.id, "claimedUserID", identity.UserID)
		return
	}

	h.leaveRooms(client)
	client.identity = identity
	client.serverBound = !clientAsserted
	if identity != nil {
		h.joinRooms(client, identity)
	}
}

// ClientCount reports how many connections are currently registered
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// EmitToAll delivers the event to every established connection, guests included
func (h *Hub) EmitToAll(event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		h.send(client, data)
	}
}

// EmitToUser delivers the event only to connections bound to user:<userID>
func (h *Hub) EmitToUser(userID int64, event domain.Event) {
	h.emitToRoom(UserRoom(userID), event)
}

// EmitToAdmins delivers the event only to connections bound to the admin room
func (h *Hub) EmitToAdmins(event domain.Event) {
	h.emitToRoom(RoomAdmin, event)
}

func (h *Hub) emitToRoom(room string, event domain.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.rooms[room] {
		h.send(client, data)
	}
}

// Send delivers raw bytes to one specific connection, for per-connection
// messages like the setup acknowledgement. The emit paths reach clients
// through room lookups under the lock; this is the locked entry point for
// everything else. A client that was unregistered in the meantime (its send
// channel is closed by then) is skipped.
func (h *Hub) Send(client *Client, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.clients[client.id]; !ok {
		return
	}
	h.send(client, data)
}

// send never blocks the emitting goroutine: a client whose buffer is full is
// dropped and cleaned up off this goroutine. Requires h.mu held, so the
// channel cannot be closed (Unregister holds the write lock) mid-send.
func (h *Hub) send(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		h.logger.Warn("dropping slow client", "clientID", client.id)
		go h.Unregister(client)
	}
}

// joinRooms and leaveRooms require h.mu held.
func (h *Hub) joinRooms(client *Client, identity *domain.Identity) {
	h.joinRoom(client, UserRoom(identity.UserID))
	if identity.IsAdmin() {
		h.joinRoom(client, RoomAdmin)
	}
}

func (h *Hub) joinRoom(client *Client, room string) {
	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(map[string]*Client)
	}
	h.rooms[room][client.id] = client
}

func (h *Hub) leaveRooms(client *Client) {
	for room, members := range h.rooms {
		delete(members, client.id)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}
