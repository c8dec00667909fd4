package domain

import "github.com/spec-kit/schedule-service/internal/identity"

// Viewer is the person rendering a calendar or performing an action.
type Viewer struct {
	UserID    string
	StafferID string
	Email     string
	Name      string
	Role      Role
}

// Tokens returns every identifier the viewer is known by.
func (v Viewer) Tokens() identity.Set {
	return identity.NewSet(v.UserID, v.StafferID, v.Email, v.Name)
}

// DisplayName falls back to the email when no name is known.
func (v Viewer) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return v.Email
}
