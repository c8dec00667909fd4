package domain

import "time"

// RequestStatus enumerates client request states.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusDenied:
		return true
	}
	return false
}

// ClientRequest is a date/time request submitted by a client.
type ClientRequest struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Description     string        `json:"description" yaml:"description"`
	Date            string        `json:"date" yaml:"date"`
	Time            string        `json:"time,omitempty" yaml:"time,omitempty"`
	Location        string        `json:"location" yaml:"location"`
	PersonToContact string        `json:"personToContact" yaml:"personToContact"`
	ContactInfo     string        `json:"contactInfo" yaml:"contactInfo"`
	ServiceNeeded   string        `json:"serviceNeeded" yaml:"serviceNeeded"`
	AttachedFile    string        `json:"attachedFile,omitempty" yaml:"attachedFile,omitempty"`
	Status          RequestStatus `json:"status" yaml:"status"`
	ClientEmail     string        `json:"clientEmail" yaml:"clientEmail"`
	ClientName      string        `json:"clientName" yaml:"clientName"`
	ApprovedBy      string        `json:"approvedBy,omitempty" yaml:"approvedBy,omitempty"`
	DateApproved    *time.Time    `json:"dateApproved,omitempty" yaml:"dateApproved,omitempty"`
	DeniedBy        string        `json:"deniedBy,omitempty" yaml:"deniedBy,omitempty"`
	DateDenied      *time.Time    `json:"dateDenied,omitempty" yaml:"dateDenied,omitempty"`
	ReasonOfDenial  string        `json:"reasonOfDenial,omitempty" yaml:"reasonOfDenial,omitempty"`
	CreatedAt       time.Time     `json:"createdAt" yaml:"-"`
}

// IsPending reports whether the request still accepts edits from its client.
func (r ClientRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
