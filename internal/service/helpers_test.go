package service

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/repository"
	"github.com/spec-kit/schedule-service/internal/repository/memory"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type recordedChanges struct {
	mu      sync.Mutex
	changes []events.Change
}

func (r *recordedChanges) topics() []events.Topic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Topic, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.Topic)
	}
	return out
}

type testEnv struct {
	repos        repository.Set
	bus          events.Bus
	changes      *recordedChanges
	team         *TeamService
	assignments  *AssignmentService
	availability *AvailabilityService
	requests     *RequestService
	calendar     *CalendarService
	reports      *ReportService
	events       *EventService
}

func newTestEnv() *testEnv {
	repos := memory.NewSet()
	bus := events.NewInMemoryBus(nil)
	rec := &recordedChanges{}
	for _, topic := range events.Topics {
		bus.Subscribe(topic, func(_ context.Context, c events.Change) error {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			rec.changes = append(rec.changes, c)
			return nil
		})
	}

	team := NewTeamService(TeamDependencies{TeamRepo: repos.Team, StafferRepo: repos.Staffers, Clock: fixedClock})
	availability := NewAvailabilityService(AvailabilityDependencies{AvailabilityRepo: repos.Availability, RequestRepo: repos.Requests, Bus: bus})
	return &testEnv{
		repos:   repos,
		bus:     bus,
		changes: rec,
		team:    team,
		assignments: NewAssignmentService(AssignmentDependencies{
			AssignmentRepo: repos.Assignments,
			InvitationRepo: repos.Invitations,
			RequestRepo:    repos.Requests,
			Bus:            bus,
			Clock:          fixedClock,
		}),
		availability: availability,
		requests:     NewRequestService(RequestDependencies{RequestRepo: repos.Requests, Gate: availability, Bus: bus, Clock: fixedClock}),
		calendar: NewCalendarService(CalendarDependencies{
			EventRepo:      repos.Events,
			AssignmentRepo: repos.Assignments,
			RequestRepo:    repos.Requests,
			Team:           team,
		}),
		reports: NewReportService(repos.Assignments),
		events:  NewEventService(EventDependencies{EventRepo: repos.Events, StafferRepo: repos.Staffers, Bus: bus}),
	}
}

var (
	adminViewer  = domain.Viewer{UserID: "u-admin", Email: "admin@x.com", Name: "Ada Admin", Role: domain.RoleAdmin}
	execViewer   = domain.Viewer{UserID: "u-exec", StafferID: "e1", Email: "exec@x.com", Name: "Eve Exec", Role: domain.RoleExecutive}
	otherExec    = domain.Viewer{UserID: "u-exec2", Email: "exec2@x.com", Name: "Oscar Exec", Role: domain.RoleExecutive}
	clientViewer = domain.Viewer{UserID: "u-client", Email: "client@x.com", Name: "Cleo Client", Role: domain.RoleClient}
	scribeViewer = domain.Viewer{UserID: "u-s1", StafferID: "s1", Email: "s1@x.com", Name: "Sam Scribe", Role: domain.RoleStaffer}
	otherScribe  = domain.Viewer{UserID: "u-s9", StafferID: "s9", Email: "s9@x.com", Name: "Nia Scribe", Role: domain.RoleStaffer}
)

func strPtr(s string) *string { return &s }
