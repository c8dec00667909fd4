package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/schedule-service/internal/calendar"
	"github.com/spec-kit/schedule-service/internal/domain"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

func seedStaffer(t *testing.T, env *testEnv, id, email string, section domain.Section) {
	t.Helper()
	require.NoError(t, env.repos.Staffers.Create(context.Background(), &domain.Staffer{
		ID: id, FirstName: id, Email: email, Section: section,
	}))
}

func itemIDs(items []domain.CalendarItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.SourceID)
	}
	return ids
}

func TestExecutiveCalendarFollowsTeam(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	seedStaffer(t, env, "s1", "s1@x.com", domain.SectionScribes)
	seedStaffer(t, env, "s9", "s9@x.com", domain.SectionScribes)

	_, err := env.team.AddMember(ctx, execViewer, "s1")
	require.NoError(t, err)

	team, err := env.assignments.CreateAssignment(ctx, otherExec, AssignmentInput{
		Recipient: Recipient{AssignedTo: "s5", AssignedToEmail: "s1@x.com"},
		Section:   domain.SectionScribes,
	})
	require.NoError(t, err)
	_, err = env.assignments.CreateAssignment(ctx, otherExec, AssignmentInput{
		Recipient: Recipient{AssignedTo: "s9", AssignedToEmail: "s9@x.com"},
		Section:   domain.SectionScribes,
	})
	require.NoError(t, err)
	own, err := env.assignments.CreateAssignment(ctx, adminViewer, AssignmentInput{
		Recipient: Recipient{AssignedToEmail: "exec@x.com"},
		Section:   domain.SectionExecutives,
	})
	require.NoError(t, err)

	view, err := env.calendar.Visible(ctx, execViewer, calendar.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{team.ID, own.ID}, itemIDs(view.Items))

	require.NoError(t, env.team.RemoveMember(ctx, execViewer, "s1"))
	view, err = env.calendar.Visible(ctx, execViewer, calendar.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{own.ID}, itemIDs(view.Items))
}

func TestSectionHeadCalendarProjections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	class, err := env.assignments.CreateAssignment(ctx, execViewer, AssignmentInput{
		Recipient: Recipient{AssignedTo: "s1"},
		Section:   domain.SectionScribes,
		Schedule:  Schedule{TaskTitle: "Layout Review"},
	})
	require.NoError(t, err)
	event, err := env.assignments.CreateAssignment(ctx, execViewer, AssignmentInput{
		Recipient: Recipient{AssignedTo: "s1"},
		Section:   domain.SectionScribes,
	})
	require.NoError(t, err)

	head := domain.Viewer{StafferID: "s1", Role: domain.RoleSectionHead}
	view, err := env.calendar.Visible(ctx, head, calendar.Options{FilterByUser: true})
	require.NoError(t, err)
	assert.Equal(t, []string{class.ID}, itemIDs(view.ClassSchedule))
	assert.Equal(t, []string{event.ID}, itemIDs(view.Events))

	other := domain.Viewer{StafferID: "s2", Role: domain.RoleSectionHead}
	view, err = env.calendar.Visible(ctx, other, calendar.Options{FilterByUser: true})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestStafferAndClientCalendars(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	seedStaffer(t, env, "s1", "s1@x.com", domain.SectionScribes)

	_, err := env.events.Create(ctx, execViewer, EventInput{Title: "Nope", Start: "2024-06-01"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))
	_, err = env.events.Create(ctx, adminViewer, EventInput{Title: "Ghost", Start: "2024-06-01", StafferID: "missing"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))

	all, err := env.events.Create(ctx, adminViewer, EventInput{Title: "All hands", Start: "2024-06-01T09:00"})
	require.NoError(t, err)
	mine, err := env.events.Create(ctx, adminViewer, EventInput{Title: "1:1", Start: "2024-06-02", StafferID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Admin", mine.AssignedByName)

	view, err := env.calendar.Visible(ctx, domain.Viewer{StafferID: "s1", Role: domain.RoleStaffer}, calendar.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{all.ID, mine.ID}, itemIDs(view.Items))

	view, err = env.calendar.Visible(ctx, domain.Viewer{StafferID: "s2", Role: domain.RoleStaffer}, calendar.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{all.ID}, itemIDs(view.Items))

	req, err := env.requests.Create(ctx, clientViewer, RequestInput{Title: "Shoot", Date: "2024-06-10"})
	require.NoError(t, err)
	view, err = env.calendar.Visible(ctx, clientViewer, calendar.Options{})
	require.NoError(t, err)
	assert.Equal(t, calendar.ModeNormal, view.Mode)
	assert.Equal(t, []string{req.ID}, itemIDs(view.Items))

	view, err = env.calendar.Visible(ctx, domain.Viewer{Role: domain.RoleClient}, calendar.Options{})
	require.NoError(t, err)
	assert.Equal(t, calendar.ModeDegradedAllRequests, view.Mode)
}

func TestReportsByCategory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	a, err := env.assignments.CreateAssignment(ctx, execViewer, AssignmentInput{
		Recipient: Recipient{AssignedTo: "s1"}, Section: domain.SectionScribes, Schedule: Schedule{TaskTitle: "Layout Review"},
	})
	require.NoError(t, err)
	b, err := env.assignments.CreateAssignment(ctx, execViewer, AssignmentInput{
		Recipient: Recipient{AssignedTo: "s1"}, Section: domain.SectionCreatives,
	})
	require.NoError(t, err)
	_, err = env.assignments.CompleteAssignment(ctx, scribeViewer, a.ID)
	require.NoError(t, err)
	_, err = env.assignments.RejectAssignment(ctx, scribeViewer, b.ID, "sick")
	require.NoError(t, err)

	completed, err := env.reports.Completed(ctx, nil)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, domain.CategoryClassSchedule, calendar.Categorize(completed[0]))

	rejected, err := env.reports.Rejected(ctx, []domain.Section{domain.SectionCreatives})
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, domain.CategoryEvents, calendar.Categorize(rejected[0]))

	none, err := env.reports.Rejected(ctx, []domain.Section{domain.SectionScribes})
	require.NoError(t, err)
	assert.Empty(t, none)
}
