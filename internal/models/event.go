package models

// Operations recorded in user lifecycle events.
const (
	EventUserAdded   = "user_added"
	EventUserUpdated = "user_updated"
	EventUserDeleted = "user_deleted"
)

// UserEvent is the message published to Kafka after a successful mutation.
type UserEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Operation string `json:"operation"` // One of the Event* constants
	UserID    int64  `json:"user_id"`   // Id of the affected user
	UserName  string `json:"user_name"` // Name at the time of the operation, empty for deletes
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the operation
}
