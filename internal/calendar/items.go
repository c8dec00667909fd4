package calendar

import (
	"strings"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// FromEvent converts an admin event into a calendar item.
func FromEvent(e domain.AdminEvent) domain.CalendarItem {
	item := domain.CalendarItem{
		Origin:    domain.OriginAdminEvent,
		SourceID:  e.ID,
		Title:     e.Title,
		Date:      e.Date(),
		Location:  e.Location,
		FromAdmin: true,
	}
	if len(e.Start) > len(domain.DateLayout)+1 {
		item.Time = e.Start[len(domain.DateLayout)+1:]
	}
	return item
}

// FromAssignment converts an assignment into a calendar item.
func FromAssignment(a domain.Assignment) domain.CalendarItem {
	item := domain.CalendarItem{
		Origin:       domain.OriginAssignment,
		SourceID:     a.ID,
		AssignmentID: a.ID,
		Title:        assignmentTitle(a),
		Date:         a.TaskDate,
		Time:         a.TaskTime,
		Location:     a.TaskLocation,
		Status:       string(a.Status),
		Category:     Categorize(a),
		FromAdmin:    a.IssuedByAdmin(),
	}
	if !a.IsTeamTask() {
		item.RequestID = *a.RequestID
	}
	return item
}

// FromRequest converts a client request into a calendar item.
func FromRequest(r domain.ClientRequest) domain.CalendarItem {
	return domain.CalendarItem{
		Origin:    domain.OriginRequest,
		SourceID:  r.ID,
		RequestID: r.ID,
		Title:     r.Title,
		Date:      r.Date,
		Time:      r.Time,
		Location:  r.Location,
		Status:    string(r.Status),
	}
}

// Categorize places an assignment under "Class Schedule" when it carries a task
// title and under "Events" when it has neither a title nor a request. Request-derived
// assignments without a title belong to neither projection.
func Categorize(a domain.Assignment) domain.ItemCategory {
	switch {
	case a.HasTaskTitle():
		return domain.CategoryClassSchedule
	case a.IsTeamTask():
		return domain.CategoryEvents
	}
	return ""
}

func assignmentTitle(a domain.Assignment) string {
	if a.HasTaskTitle() {
		return strings.TrimSpace(a.TaskTitle)
	}
	if name := strings.TrimSpace(a.AssignedToName); name != "" {
		return name
	}
	return a.AssignedTo
}
