package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/identity"
)

func sourceIDs(items []domain.CalendarItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.SourceID)
	}
	return ids
}

func TestExecutiveItems(t *testing.T) {
	exec := domain.Viewer{UserID: "u-exec", StafferID: "e1", Email: "exec@x.com", Name: "Eve Exec", Role: domain.RoleExecutive}

	t.Run("team member match by email token", func(t *testing.T) {
		team := []identity.Set{identity.NewSet("s1", "s1@x.com")}
		assignments := []domain.Assignment{
			{ID: "a-team", AssignedTo: "s5", AssignedToEmail: "s1@x.com", Status: domain.AssignmentStatusPending},
			{ID: "a-other", AssignedTo: "s9", AssignedToEmail: "s9@x.com", Status: domain.AssignmentStatusPending},
		}

		items := ExecutiveItems(exec, nil, assignments, team)
		assert.Equal(t, []string{"a-team"}, sourceIDs(items))
		assert.Equal(t, domain.OriginAssignment, items[0].Origin)
		assert.Equal(t, "a-team", items[0].AssignmentID)
	})

	t.Run("assignments to the executive are included", func(t *testing.T) {
		assignments := []domain.Assignment{{ID: "a-self", AssignedToEmail: "EXEC@x.com "}}
		assert.Equal(t, []string{"a-self"}, sourceIDs(ExecutiveItems(exec, nil, assignments, nil)))
	})

	t.Run("only admin events targeted at the executive", func(t *testing.T) {
		events := []domain.AdminEvent{
			{ID: "ev-mine", StafferID: "e1", Start: "2024-06-01"},
			{ID: "ev-all", Start: "2024-06-01"},
			{ID: "ev-other", StafferID: "s1", Start: "2024-06-01"},
		}
		items := ExecutiveItems(exec, events, nil, nil)
		require.Len(t, items, 1)
		assert.Equal(t, "ev-mine", items[0].SourceID)
		assert.True(t, items[0].FromAdmin)
	})

	t.Run("events match the staffer id only", func(t *testing.T) {
		events := []domain.AdminEvent{
			{ID: "ev-email", StafferID: "exec@x.com", Start: "2024-06-01"},
			{ID: "ev-name", StafferID: "Eve Exec", Start: "2024-06-01"},
			{ID: "ev-user", StafferID: "u-exec", Start: "2024-06-01"},
			{ID: "ev-id", StafferID: " E1 ", Start: "2024-06-01"},
		}
		assert.Equal(t, []string{"ev-id"}, sourceIDs(ExecutiveItems(exec, events, nil, nil)))

		noStaffer := exec
		noStaffer.StafferID = ""
		assert.Empty(t, ExecutiveItems(noStaffer, events, nil, nil))
	})

	t.Run("assignments without recipient are never visible", func(t *testing.T) {
		team := []identity.Set{identity.NewSet("")}
		assert.Empty(t, ExecutiveItems(exec, nil, []domain.Assignment{{ID: "a-empty"}}, team))
	})
}

func TestStafferItems(t *testing.T) {
	events := []domain.AdminEvent{
		{ID: "ev-all", Title: "All hands", Start: "2024-06-01T09:00"},
		{ID: "ev-s1", StafferID: "S1", Start: "2024-06-02"},
		{ID: "ev-s2", StafferID: "s2", Start: "2024-06-03"},
	}

	items := StafferItems(domain.Viewer{StafferID: "s1", Role: domain.RoleStaffer}, events)
	assert.Equal(t, []string{"ev-all", "ev-s1"}, sourceIDs(items))
	assert.Equal(t, "2024-06-01", items[0].Date)
	assert.Equal(t, "09:00", items[0].Time)

	anonymous := StafferItems(domain.Viewer{Role: domain.RoleStaffer}, events)
	assert.Equal(t, []string{"ev-all"}, sourceIDs(anonymous))
}

func TestClientItems(t *testing.T) {
	requests := []domain.ClientRequest{
		{ID: "r1", ClientEmail: "Client@x.com"},
		{ID: "r2", ClientEmail: "other@x.com"},
	}

	t.Run("own requests by email", func(t *testing.T) {
		items, mode := ClientItems(domain.Viewer{Email: "client@X.com", Role: domain.RoleClient}, requests)
		assert.Equal(t, ModeNormal, mode)
		assert.Equal(t, []string{"r1"}, sourceIDs(items))
	})

	t.Run("missing email falls back to every request", func(t *testing.T) {
		items, mode := ClientItems(domain.Viewer{Email: "  ", Role: domain.RoleClient}, requests)
		assert.Equal(t, ModeDegradedAllRequests, mode)
		assert.Equal(t, []string{"r1", "r2"}, sourceIDs(items))
	})

	t.Run("visible never leaks events to clients", func(t *testing.T) {
		view := Visible(domain.Viewer{Email: "client@x.com", Role: domain.RoleClient}, Snapshot{
			Events:   []domain.AdminEvent{{ID: "ev"}},
			Requests: requests,
		}, Options{})
		assert.Equal(t, []string{"r1"}, sourceIDs(view.Items))
	})
}

func TestRoleCalendar(t *testing.T) {
	req := "req-1"
	assignments := []domain.Assignment{
		{ID: "a-class", AssignedTo: "s1", TaskTitle: "Layout Review"},
		{ID: "a-event", AssignedTo: "s1"},
		{ID: "a-request", AssignedTo: "s1", RequestID: &req},
		{ID: "a-other", AssignedTo: "s2", TaskTitle: "Proofing"},
	}

	t.Run("projections are disjoint", func(t *testing.T) {
		view := RoleCalendar(domain.Viewer{Role: domain.RoleSectionHead}, assignments, false)
		assert.Equal(t, []string{"a-event"}, sourceIDs(view.Events))
		assert.Equal(t, []string{"a-class", "a-other"}, sourceIDs(view.ClassSchedule))
	})

	t.Run("filter by user", func(t *testing.T) {
		view := RoleCalendar(domain.Viewer{StafferID: "s1", Role: domain.RoleSectionHead}, assignments, true)
		assert.Equal(t, []string{"a-event"}, sourceIDs(view.Events))
		assert.Equal(t, []string{"a-class"}, sourceIDs(view.ClassSchedule))
		assert.Equal(t, domain.CategoryClassSchedule, view.ClassSchedule[0].Category)
	})

	t.Run("visible merges both projections", func(t *testing.T) {
		view := Visible(domain.Viewer{Role: domain.RoleSectionHead}, Snapshot{Assignments: assignments}, Options{})
		assert.Len(t, view.Items, 3)
		assert.Len(t, view.Events, 1)
		assert.Len(t, view.ClassSchedule, 2)
	})
}

func TestAdminSeesEverything(t *testing.T) {
	view := Visible(domain.Viewer{Role: domain.RoleAdmin}, Snapshot{
		Events:      []domain.AdminEvent{{ID: "ev"}},
		Assignments: []domain.Assignment{{ID: "a"}},
		Requests:    []domain.ClientRequest{{ID: "r"}},
	}, Options{})
	assert.Equal(t, []string{"ev", "a", "r"}, sourceIDs(view.Items))
}

func TestOverview(t *testing.T) {
	records := []domain.ClientAvailability{
		{Date: "2024-06-01", Available: false, Notes: "Holiday"},
		{Date: "2024-06-03", Available: true},
		{Date: "2024-07-01", Available: true},
	}
	requests := []domain.ClientRequest{
		{ID: "r1", Date: "2024-06-01", Status: domain.RequestStatusApproved},
		{ID: "r2", Date: "2024-06-02", Status: domain.RequestStatusPending},
		{ID: "r3", Date: "2024-06-02", Status: domain.RequestStatusPending},
		{ID: "r4", Date: "2024-06-02", Status: domain.RequestStatusDenied},
	}

	items := Overview(records, requests, "2024-06")
	require.Len(t, items, 4)

	assert.Equal(t, domain.OriginAvailability, items[0].Origin)
	assert.Equal(t, domain.ToneUnavailable, items[0].Tone)
	assert.Equal(t, "Unavailable: Holiday", items[0].Title)
	assert.Equal(t, domain.ToneAvailable, items[1].Tone)

	assert.Equal(t, domain.OriginRequestCount, items[2].Origin)
	assert.Equal(t, "2024-06-01", items[2].Date)
	assert.Equal(t, "1 request", items[2].Title)

	assert.Equal(t, "2024-06-02", items[3].Date)
	assert.Equal(t, domain.ToneNeutral, items[3].Tone)
	assert.Equal(t, 2, items[3].Count)
	assert.Equal(t, "2 requests", items[3].Title)
}

func TestReports(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	late := base.Add(72 * time.Hour)
	assignments := []domain.Assignment{
		{ID: "c-old", Section: domain.SectionScribes, Status: domain.AssignmentStatusCompleted, AssignedAt: base},
		{ID: "c-new", Section: domain.SectionCreatives, Status: domain.AssignmentStatusCompleted, AssignedAt: base.Add(time.Hour)},
		{ID: "r-fallback", Section: domain.SectionScribes, Status: domain.AssignmentStatusRejected, AssignedAt: base.Add(48 * time.Hour)},
		{ID: "r-stamped", Section: domain.SectionScribes, Status: domain.AssignmentStatusRejected, AssignedAt: base, RejectedAt: &late},
		{ID: "pending", Section: domain.SectionScribes, Status: domain.AssignmentStatusPending, AssignedAt: late},
	}

	completed := Completed(assignments, nil)
	require.Len(t, completed, 2)
	assert.Equal(t, "c-new", completed[0].ID)
	assert.Equal(t, "c-old", completed[1].ID)

	scribes := Completed(assignments, []domain.Section{domain.SectionScribes})
	require.Len(t, scribes, 1)
	assert.Equal(t, "c-old", scribes[0].ID)

	rejected := Rejected(assignments, []domain.Section{""})
	require.Len(t, rejected, 2)
	assert.Equal(t, "r-stamped", rejected[0].ID)
	assert.Equal(t, "r-fallback", rejected[1].ID)
}
