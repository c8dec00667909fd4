// Package memory implements the store collaborators inside the process. It backs
// the development profile and service tests.
package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/identity"
	"github.com/spec-kit/schedule-service/internal/repository"
)

// NewSet returns a fresh, empty set of in-memory repositories.
func NewSet() repository.Set {
	return repository.Set{
		Staffers:     &StafferStore{rows: newTable[domain.Staffer]()},
		Users:        &UserStore{rows: newTable[domain.User]()},
		Requests:     &RequestStore{rows: newTable[domain.ClientRequest]()},
		Availability: NewAvailabilityStore(),
		Assignments:  &AssignmentStore{rows: newTable[domain.Assignment]()},
		Invitations:  &InvitationStore{rows: newTable[domain.Invitation]()},
		Team:         &TeamStore{rows: newTable[domain.TeamMember]()},
		Events:       &EventStore{rows: newTable[domain.AdminEvent]()},
	}
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}

// StafferStore is the in-memory staff directory.
type StafferStore struct{ rows *table[domain.Staffer] }

func (s *StafferStore) Create(_ context.Context, staffer *domain.Staffer) error {
	staffer.ID = newID(staffer.ID)
	stamp(&staffer.CreatedAt)
	return s.rows.insert(staffer.ID, *staffer)
}

func (s *StafferStore) List(context.Context) ([]domain.Staffer, error) {
	return s.rows.all(nil), nil
}

func (s *StafferStore) GetByID(_ context.Context, id string) (*domain.Staffer, error) {
	staffer, err := s.rows.get(id)
	if err != nil {
		return nil, err
	}
	return &staffer, nil
}

func (s *StafferStore) GetByEmail(_ context.Context, email string) (*domain.Staffer, error) {
	staffer, err := s.rows.find(func(st domain.Staffer) bool { return identity.SameEmail(st.Email, email) })
	if err != nil {
		return nil, err
	}
	return &staffer, nil
}

// UserStore is the in-memory user directory.
type UserStore struct{ rows *table[domain.User] }

func (s *UserStore) Create(_ context.Context, user *domain.User) error {
	user.ID = newID(user.ID)
	stamp(&user.CreatedAt)
	return s.rows.insert(user.ID, *user)
}

func (s *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, err := s.rows.get(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, err := s.rows.find(func(u domain.User) bool { return identity.SameEmail(u.Email, email) })
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RequestStore keeps client requests.
type RequestStore struct{ rows *table[domain.ClientRequest] }

func (s *RequestStore) Create(_ context.Context, req *domain.ClientRequest) error {
	req.ID = newID(req.ID)
	stamp(&req.CreatedAt)
	return s.rows.insert(req.ID, *req)
}

func (s *RequestStore) Update(_ context.Context, req *domain.ClientRequest) error {
	return s.rows.replace(req.ID, *req)
}

func (s *RequestStore) Delete(_ context.Context, id string) error {
	return s.rows.remove(id)
}

func (s *RequestStore) GetByID(_ context.Context, id string) (*domain.ClientRequest, error) {
	req, err := s.rows.get(id)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *RequestStore) List(context.Context) ([]domain.ClientRequest, error) {
	return s.rows.all(nil), nil
}

func (s *RequestStore) ListByStatus(_ context.Context, status domain.RequestStatus) ([]domain.ClientRequest, error) {
	return s.rows.all(func(r domain.ClientRequest) bool { return r.Status == status }), nil
}

// AvailabilityStore keeps one record per date.
type AvailabilityStore struct{ rows *table[domain.ClientAvailability] }

// NewAvailabilityStore returns an empty availability store.
func NewAvailabilityStore() *AvailabilityStore {
	return &AvailabilityStore{rows: newTable[domain.ClientAvailability]()}
}

func (s *AvailabilityStore) List(context.Context) ([]domain.ClientAvailability, error) {
	records := s.rows.all(nil)
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (s *AvailabilityStore) Get(_ context.Context, date string) (*domain.ClientAvailability, error) {
	record, err := s.rows.get(date)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *AvailabilityStore) Set(_ context.Context, record *domain.ClientAvailability) error {
	s.rows.upsert(record.Date, *record)
	return nil
}

func (s *AvailabilityStore) Delete(_ context.Context, date string) error {
	return s.rows.remove(date)
}

// AssignmentStore keeps assignments.
type AssignmentStore struct{ rows *table[domain.Assignment] }

func (s *AssignmentStore) Create(_ context.Context, a *domain.Assignment) error {
	a.ID = newID(a.ID)
	return s.rows.insert(a.ID, *a)
}

func (s *AssignmentStore) Update(_ context.Context, a *domain.Assignment) error {
	return s.rows.replace(a.ID, *a)
}

func (s *AssignmentStore) Delete(_ context.Context, id string) error {
	return s.rows.remove(id)
}

func (s *AssignmentStore) GetByID(_ context.Context, id string) (*domain.Assignment, error) {
	a, err := s.rows.get(id)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AssignmentStore) List(context.Context) ([]domain.Assignment, error) {
	return s.rows.all(nil), nil
}

// InvitationStore keeps invitations.
type InvitationStore struct{ rows *table[domain.Invitation] }

func (s *InvitationStore) Create(_ context.Context, inv *domain.Invitation) error {
	inv.ID = newID(inv.ID)
	stamp(&inv.CreatedAt)
	return s.rows.insert(inv.ID, *inv)
}

func (s *InvitationStore) Update(_ context.Context, inv *domain.Invitation) error {
	return s.rows.replace(inv.ID, *inv)
}

func (s *InvitationStore) GetByID(_ context.Context, id string) (*domain.Invitation, error) {
	inv, err := s.rows.get(id)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *InvitationStore) ListByAssignment(_ context.Context, assignmentID string) ([]domain.Invitation, error) {
	return s.rows.all(func(inv domain.Invitation) bool { return inv.AssignmentID == assignmentID }), nil
}

func (s *InvitationStore) DeleteByAssignment(_ context.Context, assignmentID string) error {
	for _, inv := range s.rows.all(func(inv domain.Invitation) bool { return inv.AssignmentID == assignmentID }) {
		if err := s.rows.remove(inv.ID); err != nil {
			return err
		}
	}
	return nil
}

// TeamStore keeps (executiveEmail, stafferId) pairs.
type TeamStore struct{ rows *table[domain.TeamMember] }

func teamKey(executiveEmail, stafferID string) string {
	return string(identity.Normalize(executiveEmail)) + "|" + stafferID
}

func (s *TeamStore) MembersOf(_ context.Context, executiveEmail string) ([]domain.TeamMember, error) {
	return s.rows.all(func(m domain.TeamMember) bool {
		return identity.SameEmail(m.ExecutiveEmail, executiveEmail)
	}), nil
}

func (s *TeamStore) Add(_ context.Context, member *domain.TeamMember) error {
	stamp(&member.CreatedAt)
	s.rows.upsert(teamKey(member.ExecutiveEmail, member.StafferID), *member)
	return nil
}

func (s *TeamStore) Remove(_ context.Context, executiveEmail, stafferID string) error {
	return s.rows.remove(teamKey(executiveEmail, stafferID))
}

// EventStore keeps admin calendar events.
type EventStore struct{ rows *table[domain.AdminEvent] }

func (s *EventStore) List(context.Context) ([]domain.AdminEvent, error) {
	return s.rows.all(nil), nil
}

func (s *EventStore) Create(_ context.Context, event *domain.AdminEvent) error {
	event.ID = newID(event.ID)
	return s.rows.insert(event.ID, *event)
}
