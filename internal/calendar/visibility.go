// Package calendar computes what each viewer may see. Every function is a pure
// transform over collections the caller has already loaded.
package calendar

import (
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/identity"
)

// Mode names how a view was produced.
type Mode string

const (
	ModeNormal Mode = "normal"
	// ModeDegradedAllRequests is used for a client without a resolvable email: every
	// request is shown.
	ModeDegradedAllRequests Mode = "degraded-all-requests"
)

// Snapshot is the full set of entities a view is computed from.
type Snapshot struct {
	Events      []domain.AdminEvent
	Assignments []domain.Assignment
	Requests    []domain.ClientRequest
	// Team holds one token set per member of the viewer's team. Only consulted for
	// executives.
	Team []identity.Set
}

// Options tunes role calendars.
type Options struct {
	FilterByUser bool
}

// View is the visibility set of one viewer.
type View struct {
	Role          domain.Role           `json:"role"`
	Mode          Mode                  `json:"mode"`
	Items         []domain.CalendarItem `json:"items"`
	Events        []domain.CalendarItem `json:"events,omitempty"`
	ClassSchedule []domain.CalendarItem `json:"classSchedule,omitempty"`
}

// Visible dispatches on the viewer's role.
func Visible(viewer domain.Viewer, snap Snapshot, opts Options) View {
	switch viewer.Role {
	case domain.RoleClient:
		items, mode := ClientItems(viewer, snap.Requests)
		return View{Role: viewer.Role, Mode: mode, Items: items}
	case domain.RoleExecutive:
		return View{Role: viewer.Role, Mode: ModeNormal, Items: ExecutiveItems(viewer, snap.Events, snap.Assignments, snap.Team)}
	case domain.RoleSectionHead:
		rc := RoleCalendar(viewer, snap.Assignments, opts.FilterByUser)
		items := make([]domain.CalendarItem, 0, len(rc.Events)+len(rc.ClassSchedule))
		items = append(append(items, rc.Events...), rc.ClassSchedule...)
		return View{Role: viewer.Role, Mode: ModeNormal, Items: items, Events: rc.Events, ClassSchedule: rc.ClassSchedule}
	case domain.RoleAdmin:
		return View{Role: viewer.Role, Mode: ModeNormal, Items: AdminItems(snap)}
	default:
		return View{Role: viewer.Role, Mode: ModeNormal, Items: StafferItems(viewer, snap.Events)}
	}
}

// ClientItems returns the requests owned by the viewer. A viewer without an email
// gets every request in the degraded mode.
func ClientItems(viewer domain.Viewer, requests []domain.ClientRequest) ([]domain.CalendarItem, Mode) {
	items := make([]domain.CalendarItem, 0, len(requests))
	if identity.Normalize(viewer.Email) == "" {
		for _, r := range requests {
			items = append(items, FromRequest(r))
		}
		return items, ModeDegradedAllRequests
	}
	for _, r := range requests {
		if identity.SameEmail(r.ClientEmail, viewer.Email) {
			items = append(items, FromRequest(r))
		}
	}
	return items, ModeNormal
}

// ExecutiveItems returns admin events targeted at the viewer's staffer id plus every
// assignment whose recipient matches the viewer or one of the team token sets.
func ExecutiveItems(viewer domain.Viewer, events []domain.AdminEvent, assignments []domain.Assignment, team []identity.Set) []domain.CalendarItem {
	own := viewer.Tokens()
	items := make([]domain.CalendarItem, 0)
	for _, e := range events {
		if targetsStaffer(e, viewer) {
			items = append(items, FromEvent(e))
		}
	}
	for _, a := range assignments {
		if assignmentVisibleTo(a, own, team) {
			items = append(items, FromAssignment(a))
		}
	}
	return items
}

func assignmentVisibleTo(a domain.Assignment, own identity.Set, team []identity.Set) bool {
	recipient := a.RecipientTokens()
	if identity.Matches(recipient, own) {
		return true
	}
	for _, member := range team {
		if identity.Matches(recipient, member) {
			return true
		}
	}
	return false
}

// StafferItems returns untargeted admin events and those targeted at the viewer's
// staffer id.
func StafferItems(viewer domain.Viewer, events []domain.AdminEvent) []domain.CalendarItem {
	items := make([]domain.CalendarItem, 0)
	for _, e := range events {
		if !e.Targeted() || targetsStaffer(e, viewer) {
			items = append(items, FromEvent(e))
		}
	}
	return items
}

// targetsStaffer reports whether e is aimed at the viewer's resolved staffer id. Emails
// and names never select an event.
func targetsStaffer(e domain.AdminEvent, viewer domain.Viewer) bool {
	self := identity.Normalize(viewer.StafferID)
	return self != "" && identity.Normalize(e.StafferID) == self
}

// RoleCalendarView holds the two disjoint assignment projections.
type RoleCalendarView struct {
	Events        []domain.CalendarItem `json:"events"`
	ClassSchedule []domain.CalendarItem `json:"classSchedule"`
}

// RoleCalendar projects assignments into "Events" and "Class Schedule". With
// filterByUser only assignments addressed to the viewer are kept.
func RoleCalendar(viewer domain.Viewer, assignments []domain.Assignment, filterByUser bool) RoleCalendarView {
	own := viewer.Tokens()
	view := RoleCalendarView{
		Events:        make([]domain.CalendarItem, 0),
		ClassSchedule: make([]domain.CalendarItem, 0),
	}
	for _, a := range assignments {
		if filterByUser && !identity.Matches(a.RecipientTokens(), own) {
			continue
		}
		switch Categorize(a) {
		case domain.CategoryEvents:
			view.Events = append(view.Events, FromAssignment(a))
		case domain.CategoryClassSchedule:
			view.ClassSchedule = append(view.ClassSchedule, FromAssignment(a))
		}
	}
	return view
}

// AdminItems returns everything in the snapshot.
func AdminItems(snap Snapshot) []domain.CalendarItem {
	items := make([]domain.CalendarItem, 0, len(snap.Events)+len(snap.Assignments)+len(snap.Requests))
	for _, e := range snap.Events {
		items = append(items, FromEvent(e))
	}
	for _, a := range snap.Assignments {
		items = append(items, FromAssignment(a))
	}
	for _, r := range snap.Requests {
		items = append(items, FromRequest(r))
	}
	return items
}
