package domain

import "time"

// Role tags a user account with the calendar it renders.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleExecutive   Role = "executive"
	RoleSectionHead Role = "section_head"
	RoleStaffer     Role = "staffer"
	RoleClient      Role = "client"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleExecutive, RoleSectionHead, RoleStaffer, RoleClient:
		return true
	}
	return false
}

// User is a login account. It is linked to a Staffer only by email or id; the two
// records are stored and reconciled independently.
type User struct {
	ID           string    `json:"id" yaml:"id"`
	Email        string    `json:"email" yaml:"email"`
	PasswordHash string    `json:"-" yaml:"passwordHash"`
	Role         Role      `json:"role" yaml:"role"`
	Name         string    `json:"name" yaml:"name"`
	CreatedAt    time.Time `json:"createdAt" yaml:"-"`
}
