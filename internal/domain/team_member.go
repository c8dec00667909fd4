package domain

import "time"

// TeamMember links an executive (by email) to a staffer on their team.
type TeamMember struct {
	ExecutiveEmail string    `json:"executiveEmail" yaml:"executiveEmail"`
	StafferID      string    `json:"stafferId" yaml:"stafferId"`
	CreatedAt      time.Time `json:"createdAt" yaml:"-"`
}
