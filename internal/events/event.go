package events

import (
	"time"

	"github.com/google/uuid"
)

// Event types emitted on the account lifecycle stream
const (
	EventTypeAccountCreated = "ACCOUNT_CREATED"
	EventTypeAccountUpdated = "ACCOUNT_UPDATED"
	EventTypeAccountDeleted = "ACCOUNT_DELETED"
)

const EntityTypeAccount = "ACCOUNT"

// EntityActionEvent describes a lifecycle action taken on an entity
type EntityActionEvent struct {
	EventID    uuid.UUID   `json:"event_id"`
	EventType  string      `json:"event_type"`
	EntityType string      `json:"entity_type"`
	EntityID   uuid.UUID   `json:"entity_id"`
	Payload    interface{} `json:"payload,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// NewAccountEvent builds an event for an account lifecycle action
func NewAccountEvent(eventType string, accountID uuid.UUID, payload interface{}) EntityActionEvent {
	return EntityActionEvent{
		EventID:    uuid.New(),
		EventType:  eventType,
		EntityType: EntityTypeAccount,
		EntityID:   accountID,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
	}
}
