package domain

import "strings"

// AdminEvent is an entry on the admin calendar. An empty StafferID means the event
// is visible to everyone.
type AdminEvent struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Location       string `json:"location,omitempty" yaml:"location,omitempty"`
	Start          string `json:"start" yaml:"start"`
	StafferID      string `json:"stafferId,omitempty" yaml:"stafferId,omitempty"`
	AssignedByName string `json:"assignedByName,omitempty" yaml:"assignedByName,omitempty"`
}

// Date returns the calendar date portion of Start.
func (e AdminEvent) Date() string {
	if len(e.Start) >= len(DateLayout) {
		return e.Start[:len(DateLayout)]
	}
	return e.Start
}

// Targeted reports whether the event is addressed to a single staffer.
func (e AdminEvent) Targeted() bool {
	return strings.TrimSpace(e.StafferID) != ""
}
