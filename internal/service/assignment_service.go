package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/identity"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// TransitionObserver is notified of every persisted assignment status change.
type TransitionObserver interface {
	ObserveAssignmentTransition(from, to domain.AssignmentStatus)
}

// AssignmentService drives the assignment lifecycle and its invitations.
type AssignmentService struct {
	assignments repository.AssignmentRepository
	invitations repository.InvitationRepository
	requests    repository.RequestRepository
	bus         events.Bus
	observer    TransitionObserver
	now         Clock
}

// AssignmentDependencies bundles repositories.
type AssignmentDependencies struct {
	AssignmentRepo repository.AssignmentRepository
	InvitationRepo repository.InvitationRepository
	RequestRepo    repository.RequestRepository
	Bus            events.Bus
	Observer       TransitionObserver
	Clock          Clock
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	return &AssignmentService{
		assignments: deps.AssignmentRepo,
		invitations: deps.InvitationRepo,
		requests:    deps.RequestRepo,
		bus:         deps.Bus,
		observer:    deps.Observer,
		now:         defaultClock(deps.Clock),
	}
}

// Recipient identifies who receives an assignment.
type Recipient struct {
	AssignedTo      string
	AssignedToID    string
	AssignedToEmail string
	AssignedToName  string
}

func (r Recipient) tokens() identity.Set {
	return identity.NewSet(r.AssignedTo, r.AssignedToID, r.AssignedToEmail)
}

// primary returns the identifier invitations are addressed to.
func (r Recipient) primary() string {
	return strings.TrimSpace(firstNonBlank(r.AssignedToEmail, r.AssignedToID, r.AssignedTo))
}

// Schedule holds the when and where of an assignment.
type Schedule struct {
	TaskTitle    string
	TaskDate     string
	TaskTime     string
	TaskLocation string
	Notes        string
}

// AssignmentInput describes assignment creation payload.
type AssignmentInput struct {
	Recipient
	Schedule
	RequestID *string
	Section   domain.Section
}

// AssignmentPatch lists mutable fields; nil means unchanged.
type AssignmentPatch struct {
	AssignedTo      *string
	AssignedToID    *string
	AssignedToEmail *string
	AssignedToName  *string
	TaskTitle       *string
	TaskDate        *string
	TaskTime        *string
	TaskLocation    *string
	Notes           *string
}

// CanManage reports whether actor may edit or delete the assignment: either the actor
// created it, or it is a team task not issued by the admin.
func CanManage(actor domain.Viewer, a domain.Assignment) bool {
	if identity.SameEmail(actor.Email, a.AssignedByEmail) {
		return true
	}
	return a.IsTeamTask() && !a.IssuedByAdmin()
}

// CanRespond reports whether actor may accept, reject or complete the assignment:
// its recipient, or an admin, executive or section head.
func CanRespond(actor domain.Viewer, a domain.Assignment) bool {
	switch actor.Role {
	case domain.RoleAdmin, domain.RoleExecutive, domain.RoleSectionHead:
		return true
	}
	return identity.Matches(actor.Tokens(), a.RecipientTokens())
}

// List returns every assignment.
func (s *AssignmentService) List(ctx context.Context) ([]domain.Assignment, error) {
	list, err := s.assignments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Get returns one assignment.
func (s *AssignmentService) Get(ctx context.Context, id string) (*domain.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	return a, nil
}

// CreateAssignment creates a pending assignment. A request-derived assignment also
// gets a pending invitation for its recipient; both are written or neither is.
func (s *AssignmentService) CreateAssignment(ctx context.Context, actor domain.Viewer, input AssignmentInput) (*domain.Assignment, error) {
	if err := requireRole(actor, domain.RoleExecutive, domain.RoleAdmin, domain.RoleSectionHead); err != nil {
		return nil, err
	}
	if input.RequestID != nil && blank(*input.RequestID) {
		input.RequestID = nil
	}
	if err := validateAssignmentInput(input.Recipient, input.Section, input.Schedule); err != nil {
		return nil, err
	}
	if input.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *input.RequestID); err != nil {
			return nil, lookupErr(err, "request", *input.RequestID)
		}
	}

	a := s.newAssignment(actor, input.Recipient, input.Section, input.Schedule, input.RequestID)
	if err := s.persist(ctx, actor, []*domain.Assignment{a}, []Recipient{input.Recipient}); err != nil {
		return nil, err
	}
	return a, nil
}

// AssignRequest turns an approved client request into one assignment and one
// invitation per recipient. Schedule fields left empty are taken from the request.
func (s *AssignmentService) AssignRequest(ctx context.Context, actor domain.Viewer, requestID string, section domain.Section, recipients []Recipient, schedule Schedule) ([]domain.Assignment, error) {
	if err := requireRole(actor, domain.RoleExecutive, domain.RoleAdmin, domain.RoleSectionHead); err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewValidationError("at least one recipient is required", nil)
	}
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, lookupErr(err, "request", requestID)
	}
	if req.Status != domain.RequestStatusApproved {
		return nil, apperrors.NewStateConflict("request must be approved before assignment", map[string]any{
			"request_id": requestID,
			"status":     req.Status,
		})
	}

	if blank(schedule.TaskDate) {
		schedule.TaskDate = req.Date
	}
	if blank(schedule.TaskTime) {
		schedule.TaskTime = req.Time
	}
	if blank(schedule.TaskLocation) {
		schedule.TaskLocation = req.Location
	}
	if blank(schedule.Notes) {
		schedule.Notes = req.Description
	}

	created := make([]*domain.Assignment, 0, len(recipients))
	for i, r := range recipients {
		if err := validateAssignmentInput(r, section, schedule); err != nil {
			var de *apperrors.DomainError
			if errors.As(err, &de) {
				de.Details = map[string]any{"recipient_index": i}
			}
			return nil, err
		}
		created = append(created, s.newAssignment(actor, r, section, schedule, &req.ID))
	}
	if err := s.persist(ctx, actor, created, recipients); err != nil {
		return nil, err
	}

	result := make([]domain.Assignment, 0, len(created))
	for _, a := range created {
		result = append(result, *a)
	}
	return result, nil
}

// UpdateAssignment changes recipient, schedule, title, notes or location. Status is
// left untouched.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, actor domain.Viewer, id string, patch AssignmentPatch) (*domain.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	if a.Status == domain.AssignmentStatusCompleted {
		return nil, apperrors.NewStateConflict("completed assignments cannot be edited", map[string]any{"id": id})
	}
	if !CanManage(actor, *a) {
		return nil, apperrors.NewForbidden("not allowed to manage this assignment")
	}

	updated := *a
	applyString(&updated.AssignedTo, patch.AssignedTo)
	applyString(&updated.AssignedToID, patch.AssignedToID)
	applyString(&updated.AssignedToEmail, patch.AssignedToEmail)
	applyString(&updated.AssignedToName, patch.AssignedToName)
	applyString(&updated.TaskTitle, patch.TaskTitle)
	applyString(&updated.TaskDate, patch.TaskDate)
	applyString(&updated.TaskTime, patch.TaskTime)
	applyString(&updated.TaskLocation, patch.TaskLocation)
	applyString(&updated.Notes, patch.Notes)
	if !updated.HasRecipient() {
		return nil, apperrors.NewValidationError("recipient is required", nil)
	}
	if updated.TaskDate != "" && updated.TaskDate != a.TaskDate {
		if err := validateDate("taskDate", updated.TaskDate); err != nil {
			return nil, err
		}
	}

	if err := s.assignments.Update(ctx, &updated); err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	s.publish(ctx, actor.DisplayName(), events.ActionUpdated, &updated, updated.Status)
	return &updated, nil
}

// RejectAssignment records the recipient declining. The reason must not be blank.
func (s *AssignmentService) RejectAssignment(ctx context.Context, actor domain.Viewer, id, reason string) (*domain.Assignment, error) {
	if blank(reason) {
		return nil, apperrors.NewValidationError("rejection reason is required", map[string]any{"id": id})
	}
	return s.transition(ctx, actor, id, domain.AssignmentStatusRejected, func(a *domain.Assignment) {
		at := s.now()
		a.RejectedBy = actor.DisplayName()
		a.RejectedAt = &at
		a.RejectionReason = strings.TrimSpace(reason)
	})
}

// CompleteAssignment marks the work as finished.
func (s *AssignmentService) CompleteAssignment(ctx context.Context, actor domain.Viewer, id string) (*domain.Assignment, error) {
	return s.transition(ctx, actor, id, domain.AssignmentStatusCompleted, nil)
}

// AcceptAssignment records the recipient confirming a pending assignment.
func (s *AssignmentService) AcceptAssignment(ctx context.Context, actor domain.Viewer, id string) (*domain.Assignment, error) {
	return s.transition(ctx, actor, id, domain.AssignmentStatusAccepted, nil)
}

// DeleteAssignment removes the assignment and its invitations.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, actor domain.Viewer, id string) error {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return lookupErr(err, "assignment", id)
	}
	if !CanManage(actor, *a) {
		return apperrors.NewForbidden("not allowed to manage this assignment")
	}
	if err := s.invitations.DeleteByAssignment(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if err := s.assignments.Delete(ctx, id); err != nil {
		return lookupErr(err, "assignment", id)
	}
	s.publish(ctx, actor.DisplayName(), events.ActionDeleted, a, a.Status)
	return nil
}

// Invitations lists the invitations sent for an assignment.
func (s *AssignmentService) Invitations(ctx context.Context, assignmentID string) ([]domain.Invitation, error) {
	list, err := s.invitations.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// RespondToInvitation records the invitee's answer. The backing assignment is not
// changed.
func (s *AssignmentService) RespondToInvitation(ctx context.Context, actor domain.Viewer, id string, status domain.InvitationStatus) (*domain.Invitation, error) {
	if status != domain.InvitationStatusAccepted && status != domain.InvitationStatusRejected {
		return nil, apperrors.NewValidationError("status must be accepted or rejected", map[string]any{"status": status})
	}
	inv, err := s.invitations.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "invitation", id)
	}
	if !identity.Matches(identity.NewSet(inv.InvitedTo), actor.Tokens()) && actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("invitation is addressed to someone else")
	}
	inv.Status = status
	if err := s.invitations.Update(ctx, inv); err != nil {
		return nil, lookupErr(err, "invitation", id)
	}
	return inv, nil
}

func (s *AssignmentService) newAssignment(actor domain.Viewer, r Recipient, section domain.Section, schedule Schedule, requestID *string) *domain.Assignment {
	assignedBy := actor.DisplayName()
	if actor.Role == domain.RoleAdmin {
		assignedBy = domain.AdminActor
	}
	return &domain.Assignment{
		RequestID:       requestID,
		AssignedTo:      r.AssignedTo,
		AssignedToID:    r.AssignedToID,
		AssignedToEmail: r.AssignedToEmail,
		AssignedToName:  r.AssignedToName,
		Section:         section,
		AssignedBy:      assignedBy,
		AssignedByEmail: actor.Email,
		TaskTitle:       schedule.TaskTitle,
		TaskDate:        schedule.TaskDate,
		TaskTime:        schedule.TaskTime,
		TaskLocation:    schedule.TaskLocation,
		Notes:           schedule.Notes,
		Status:          domain.AssignmentStatusPending,
		AssignedAt:      s.now(),
	}
}

// persist writes the assignments and, for request-derived ones, their invitations.
// On failure everything written so far is removed.
func (s *AssignmentService) persist(ctx context.Context, actor domain.Viewer, list []*domain.Assignment, recipients []Recipient) error {
	written := make([]string, 0, len(list))
	rollback := func(cause error) error {
		for _, id := range written {
			_ = s.invitations.DeleteByAssignment(ctx, id)
			_ = s.assignments.Delete(ctx, id)
		}
		return apperrors.MapError(cause)
	}

	for i, a := range list {
		if err := s.assignments.Create(ctx, a); err != nil {
			return rollback(err)
		}
		written = append(written, a.ID)
		if a.IsTeamTask() {
			continue
		}
		inv := &domain.Invitation{
			AssignmentID:  a.ID,
			RequestID:     a.RequestID,
			InvitedTo:     recipients[i].primary(),
			InvitedToName: a.AssignedToName,
			InvitedBy:     actor.Email,
			InvitedByName: actor.DisplayName(),
			Status:        domain.InvitationStatusPending,
		}
		if err := s.invitations.Create(ctx, inv); err != nil {
			return rollback(err)
		}
	}

	for _, a := range list {
		s.publish(ctx, actor.DisplayName(), events.ActionCreated, a, "")
	}
	return nil
}

func (s *AssignmentService) transition(ctx context.Context, actor domain.Viewer, id string, next domain.AssignmentStatus, mutate func(*domain.Assignment)) (*domain.Assignment, error) {
	if actor.Role == "" {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	if !CanRespond(actor, *a) {
		return nil, apperrors.NewForbidden("only the recipient or a manager can change this assignment")
	}
	if !a.Status.CanTransitionTo(next) {
		return nil, apperrors.NewStateConflict("invalid assignment transition", map[string]any{
			"id":   id,
			"from": a.Status,
			"to":   next,
		})
	}

	updated := *a
	updated.Status = next
	if mutate != nil {
		mutate(&updated)
	}
	if err := s.assignments.Update(ctx, &updated); err != nil {
		return nil, lookupErr(err, "assignment", id)
	}
	if s.observer != nil {
		s.observer.ObserveAssignmentTransition(a.Status, next)
	}
	s.publish(ctx, actor.DisplayName(), events.ActionUpdated, &updated, a.Status)
	return &updated, nil
}

func (s *AssignmentService) publish(ctx context.Context, actor string, action events.Action, a *domain.Assignment, old domain.AssignmentStatus) {
	publish(ctx, s.bus, events.Change{
		Topic:    events.TopicAssignmentChanged,
		Action:   action,
		EntityID: a.ID,
		Actor:    actor,
		Payload: events.AssignmentChangedPayload{
			OldStatus: old,
			NewStatus: a.Status,
			Recipient: firstNonBlank(a.AssignedToEmail, a.AssignedToID, a.AssignedTo),
			TaskDate:  a.TaskDate,
		},
	})
}

func validateAssignmentInput(r Recipient, section domain.Section, schedule Schedule) error {
	if r.tokens().Empty() {
		return apperrors.NewValidationError("recipient is required", nil)
	}
	if !section.Valid() {
		return apperrors.NewValidationError("section is required", map[string]any{"section": section})
	}
	if schedule.TaskDate != "" {
		return validateDate("taskDate", schedule.TaskDate)
	}
	return nil
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if !blank(v) {
			return v
		}
	}
	return ""
}
