package events

import (
	"time"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// Topic enumerates the change notifications views subscribe to.
type Topic string

const (
	TopicAssignmentChanged   Topic = "assignment-changed"
	TopicRequestChanged      Topic = "request-changed"
	TopicAvailabilityChanged Topic = "availability-changed"
	TopicEventChanged        Topic = "event-changed"
)

// Topics lists every topic in a stable order.
var Topics = []Topic{
	TopicAssignmentChanged,
	TopicRequestChanged,
	TopicAvailabilityChanged,
	TopicEventChanged,
}

// Action describes what happened to the entity.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change is emitted after a mutation has been persisted.
type Change struct {
	ID        string      `json:"id"`
	Topic     Topic       `json:"topic"`
	Action    Action      `json:"action"`
	EntityID  string      `json:"entity_id"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// AssignmentChangedPayload payload.
type AssignmentChangedPayload struct {
	OldStatus domain.AssignmentStatus `json:"old_status,omitempty"`
	NewStatus domain.AssignmentStatus `json:"new_status,omitempty"`
	Recipient string                  `json:"recipient,omitempty"`
	TaskDate  string                  `json:"task_date,omitempty"`
}

// RequestChangedPayload payload.
type RequestChangedPayload struct {
	Status      domain.RequestStatus `json:"status"`
	ClientEmail string               `json:"client_email"`
	Date        string               `json:"date"`
}

// AvailabilityChangedPayload payload.
type AvailabilityChangedPayload struct {
	Date      string `json:"date"`
	Available *bool  `json:"available,omitempty"`
}

// EventChangedPayload payload.
type EventChangedPayload struct {
	StafferID string `json:"staffer_id,omitempty"`
	Start     string `json:"start"`
}
