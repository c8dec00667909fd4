package dto

// SetAvailabilityRequest marks a date open or closed.
type SetAvailabilityRequest struct {
	Available *bool  `json:"available" validate:"required"`
	Notes     string `json:"notes"`
}

// AddTeamMemberRequest adds a staffer to the caller's team.
type AddTeamMemberRequest struct {
	StafferID string `json:"stafferId" validate:"required"`
}

// CreateEventRequest payload for admin events.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Start       string `json:"start" validate:"required"`
	StafferID   string `json:"stafferId"`
}
