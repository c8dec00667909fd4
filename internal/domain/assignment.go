package domain

import (
	"strings"
	"time"

	"github.com/spec-kit/schedule-service/internal/identity"
)

// AssignmentStatus enumerates lifecycle states for assignments.
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusRejected  AssignmentStatus = "rejected"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// IsTerminal reports whether no transition may leave s.
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentStatusRejected || s == AssignmentStatusCompleted
}

// CanTransitionTo reports whether the state machine allows s -> next.
// Acceptance is only possible from pending; rejection and completion from any
// non-terminal state.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case AssignmentStatusAccepted:
		return s == AssignmentStatusPending
	case AssignmentStatusRejected, AssignmentStatusCompleted:
		return true
	}
	return false
}

// AdminActor is the attribution used for work issued from the admin calendar.
const AdminActor = "Admin"

// Assignment hands a piece of work to a recipient. AssignedTo, AssignedToID and
// AssignedToEmail overlap; all of them identify the recipient.
type Assignment struct {
	ID              string           `json:"id" yaml:"id"`
	RequestID       *string          `json:"requestId,omitempty" yaml:"requestId,omitempty"`
	AssignedTo      string           `json:"assignedTo,omitempty" yaml:"assignedTo,omitempty"`
	AssignedToID    string           `json:"assignedToId,omitempty" yaml:"assignedToId,omitempty"`
	AssignedToEmail string           `json:"assignedToEmail,omitempty" yaml:"assignedToEmail,omitempty"`
	AssignedToName  string           `json:"assignedToName,omitempty" yaml:"assignedToName,omitempty"`
	Section         Section          `json:"section" yaml:"section"`
	AssignedBy      string           `json:"assignedBy,omitempty" yaml:"assignedBy,omitempty"`
	AssignedByEmail string           `json:"assignedByEmail,omitempty" yaml:"assignedByEmail,omitempty"`
	TaskTitle       string           `json:"taskTitle,omitempty" yaml:"taskTitle,omitempty"`
	TaskDate        string           `json:"taskDate,omitempty" yaml:"taskDate,omitempty"`
	TaskTime        string           `json:"taskTime,omitempty" yaml:"taskTime,omitempty"`
	TaskLocation    string           `json:"taskLocation,omitempty" yaml:"taskLocation,omitempty"`
	Notes           string           `json:"notes,omitempty" yaml:"notes,omitempty"`
	Status          AssignmentStatus `json:"status" yaml:"status"`
	AssignedAt      time.Time        `json:"assignedAt" yaml:"assignedAt"`
	RejectedBy      string           `json:"rejectedBy,omitempty" yaml:"rejectedBy,omitempty"`
	RejectedAt      *time.Time       `json:"rejectedAt,omitempty" yaml:"rejectedAt,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty" yaml:"rejectionReason,omitempty"`
}

// RecipientTokens is the effective recipient identity of the assignment.
func (a Assignment) RecipientTokens() identity.Set {
	return identity.NewSet(a.AssignedTo, a.AssignedToID, a.AssignedToEmail)
}

// HasRecipient reports whether any recipient identifier is set.
func (a Assignment) HasRecipient() bool {
	return !a.RecipientTokens().Empty()
}

// IsTeamTask reports whether the assignment was created without a client request.
func (a Assignment) IsTeamTask() bool {
	return a.RequestID == nil || strings.TrimSpace(*a.RequestID) == ""
}

// HasTaskTitle distinguishes class-schedule items from bare events.
func (a Assignment) HasTaskTitle() bool {
	return strings.TrimSpace(a.TaskTitle) != ""
}

// IssuedByAdmin reports whether the assignment is attributed to the admin actor.
func (a Assignment) IssuedByAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(a.AssignedBy), AdminActor)
}
