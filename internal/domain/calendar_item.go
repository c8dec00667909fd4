package domain

// ItemOrigin records which entity a calendar item was derived from.
type ItemOrigin string

const (
	OriginAdminEvent   ItemOrigin = "admin-event"
	OriginAssignment   ItemOrigin = "assignment"
	OriginRequest      ItemOrigin = "request"
	OriginAvailability ItemOrigin = "availability"
	OriginRequestCount ItemOrigin = "request-count"
)

// ItemCategory splits role calendars into disjoint projections.
type ItemCategory string

const (
	CategoryEvents        ItemCategory = "events"
	CategoryClassSchedule ItemCategory = "class-schedule"
)

// MarkerTone colors availability overview markers.
type MarkerTone string

const (
	ToneAvailable   MarkerTone = "available"
	ToneUnavailable MarkerTone = "unavailable"
	ToneNeutral     MarkerTone = "neutral"
)

// CalendarItem is one entry of a rendered calendar. SourceID always refers to the
// entity named by Origin.
type CalendarItem struct {
	Origin       ItemOrigin   `json:"origin"`
	SourceID     string       `json:"sourceId"`
	AssignmentID string       `json:"assignmentId,omitempty"`
	RequestID    string       `json:"requestId,omitempty"`
	Title        string       `json:"title"`
	Date         string       `json:"date"`
	Time         string       `json:"time,omitempty"`
	Location     string       `json:"location,omitempty"`
	Status       string       `json:"status,omitempty"`
	Category     ItemCategory `json:"category,omitempty"`
	FromAdmin    bool         `json:"fromAdmin,omitempty"`
	Tone         MarkerTone   `json:"tone,omitempty"`
	Count        int          `json:"count,omitempty"`
}
