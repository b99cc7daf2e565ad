package domain

// EventType is a type that represents the type of a real-time event
type EventType string

const (
	EventTypeLikeUpdated    EventType = "like:updated"
	EventTypeCommentAdded   EventType = "comment:added"
	EventTypeUINew          EventType = "ui:new"
	EventTypeUIUpdated      EventType = "ui:updated"
	EventTypeUIDeleted      EventType = "ui:deleted"
	EventTypeUserNew        EventType = "user:new"
	EventTypePaymentNew     EventType = "payment:new"
	EventTypePaymentUpdated EventType = "payment:updated"
	EventTypeNotification   EventType = "new-notification"
	EventTypeUploadComplete EventType = "upload:complete"
	EventTypeUploadError    EventType = "upload:error"
	EventTypeConnected      EventType = "connected"
)

// Event represents a single real-time event fanned out to connected clients.
// Events are transient; nothing is persisted by the bus.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// UploadCompletePayload is the payload of an upload:complete event
type UploadCompletePayload struct {
	OwnerRecordID string     `json:"ownerRecordId"`
	Kind          UploadKind `json:"kind"`
	URL           string     `json:"url"`
}

// UploadErrorPayload is the payload of an upload:error event
type UploadErrorPayload struct {
	OwnerRecordID string     `json:"ownerRecordId"`
	Kind          UploadKind `json:"kind"`
	Message       string     `json:"message"`
}
