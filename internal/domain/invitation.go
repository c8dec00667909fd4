package domain

import "time"

// InvitationStatus enumerates invitation responses.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

// Invitation accompanies a request-derived assignment. Its status is informational
// and is never synchronized with the assignment status.
type Invitation struct {
	ID            string           `json:"id" yaml:"id"`
	AssignmentID  string           `json:"assignmentId" yaml:"assignmentId"`
	RequestID     *string          `json:"requestId,omitempty" yaml:"requestId,omitempty"`
	InvitedTo     string           `json:"invitedTo" yaml:"invitedTo"`
	InvitedToName string           `json:"invitedToName,omitempty" yaml:"invitedToName,omitempty"`
	InvitedBy     string           `json:"invitedBy" yaml:"invitedBy"`
	InvitedByName string           `json:"invitedByName,omitempty" yaml:"invitedByName,omitempty"`
	Status        InvitationStatus `json:"status" yaml:"status"`
	CreatedAt     time.Time        `json:"createdAt" yaml:"-"`
}
