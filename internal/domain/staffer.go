package domain

import (
	"strings"
	"time"

	"github.com/spec-kit/schedule-service/internal/identity"
)

// Section groups staffers by kind of work.
type Section string

const (
	SectionExecutives Section = "executives"
	SectionScribes    Section = "scribes"
	SectionCreatives  Section = "creatives"
	SectionManagerial Section = "managerial"
	SectionClients    Section = "clients"
)

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	switch s {
	case SectionExecutives, SectionScribes, SectionCreatives, SectionManagerial, SectionClients:
		return true
	}
	return false
}

// Staffer is a member of the staff directory. Section never changes after registration.
type Staffer struct {
	ID        string    `json:"id" yaml:"id"`
	FirstName string    `json:"firstName" yaml:"firstName"`
	LastName  string    `json:"lastName" yaml:"lastName"`
	Email     string    `json:"email" yaml:"email"`
	Position  string    `json:"position" yaml:"position"`
	Section   Section   `json:"section" yaml:"section"`
	Avatar    string    `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
}

// FullName joins first and last name.
func (s Staffer) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Person returns the staffer's identity reference.
func (s Staffer) Person() identity.Person {
	return identity.Person{ID: s.ID, Email: s.Email, Name: s.FullName()}
}
