package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/domain"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/port"
)

// setupMessage is the late room-binding request a client sends after it
// authenticated out of band (single-page apps that opened the socket as a
// guest first).
type setupMessage struct {
	Type   string `json:"type"`
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// Handler upgrades HTTP requests into hub connections
type Handler struct {
	hub      *Hub
	resolver port.IdentityResolver
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket Handler bound to the hub
func NewHandler(hub *Hub, resolver port.IdentityResolver, cfg config.WSConfig, logger *slog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		resolver: resolver,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP upgrades the connection and registers it with the hub. Guests
// (no resolvable identity) are accepted and stay eligible for broadcasts.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity := h.resolver.Resolve(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		id:   uuid.New().String(),
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, h.hub.cfg.SendBufferSize),
	}

	h.hub.Register(client, identity)

	go client.writePump()
	go client.readPump(h.handleMessage)
}

func (h *Handler) handleMessage(c *Client, message []byte) {
	var msg setupMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		h.logger.Warn("discarding malformed client message", "clientID", c.id, "error", err)
		return
	}

	if msg.Type != "setup" {
		h.logger.Warn("discarding unknown client message", "clientID", c.id, "type", msg.Type)
		return
	}

	h.hub.Bind(c, &domain.Identity{UserID: msg.UserID, Role: domain.Role(msg.Role)}, true)

	ack, err := json.Marshal(domain.Event{Type: domain.EventTypeConnected})
	if err != nil {
		h.logger.Error("failed to marshal ack", "error", err)
		return
	}
	h.hub.Send(c, ack)
}
