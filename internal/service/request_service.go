package service

import (
	"context"
	"strings"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/identity"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// DateGate answers whether a date accepts new client requests.
type DateGate interface {
	CanRequest(ctx context.Context, date string) (bool, error)
}

// RequestService coordinates the client request workflow.
type RequestService struct {
	requests repository.RequestRepository
	gate     DateGate
	bus      events.Bus
	now      Clock
}

// RequestDependencies bundles repositories.
type RequestDependencies struct {
	RequestRepo repository.RequestRepository
	Gate        DateGate
	Bus         events.Bus
	Clock       Clock
}

// NewRequestService creates the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	return &RequestService{
		requests: deps.RequestRepo,
		gate:     deps.Gate,
		bus:      deps.Bus,
		now:      defaultClock(deps.Clock),
	}
}

// RequestInput describes request creation payload.
type RequestInput struct {
	Title           string
	Description     string
	Date            string
	Time            string
	Location        string
	PersonToContact string
	ContactInfo     string
	ServiceNeeded   string
	AttachedFile    string
}

// RequestPatch lists fields the owning client may edit; nil means unchanged.
type RequestPatch struct {
	Title           *string
	Description     *string
	Date            *string
	Time            *string
	Location        *string
	PersonToContact *string
	ContactInfo     *string
	ServiceNeeded   *string
	AttachedFile    *string
}

// List returns every request.
func (s *RequestService) List(ctx context.Context) ([]domain.ClientRequest, error) {
	list, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// ListByStatus returns the requests in status.
func (s *RequestService) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.ClientRequest, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown request status", map[string]any{"status": status})
	}
	list, err := s.requests.ListByStatus(ctx, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Get returns one request as seen by viewer.
func (s *RequestService) Get(ctx context.Context, viewer domain.Viewer, id string) (*domain.ClientRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "request", id)
	}
	// Clients only see their own requests; anything else reads as missing.
	if viewer.Role == domain.RoleClient && (viewer.Email == "" || !identity.SameEmail(req.ClientEmail, viewer.Email)) {
		return nil, apperrors.NewNotFound("request", map[string]any{"id": id})
	}
	return req, nil
}

// Create submits a pending request on behalf of client. Dates closed by the
// availability gate are refused.
func (s *RequestService) Create(ctx context.Context, client domain.Viewer, input RequestInput) (*domain.ClientRequest, error) {
	if blank(input.Title) {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if blank(input.Date) {
		return nil, apperrors.NewValidationError("date is required", nil)
	}
	if err := s.checkDate(ctx, input.Date); err != nil {
		return nil, err
	}

	req := &domain.ClientRequest{
		Title:           input.Title,
		Description:     input.Description,
		Date:            input.Date,
		Time:            input.Time,
		Location:        input.Location,
		PersonToContact: input.PersonToContact,
		ContactInfo:     input.ContactInfo,
		ServiceNeeded:   input.ServiceNeeded,
		AttachedFile:    input.AttachedFile,
		Status:          domain.RequestStatusPending,
		ClientEmail:     client.Email,
		ClientName:      client.DisplayName(),
		CreatedAt:       s.now(),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publish(ctx, client.DisplayName(), events.ActionCreated, req)
	return req, nil
}

// Update edits a pending request owned by client.
func (s *RequestService) Update(ctx context.Context, client domain.Viewer, id string, patch RequestPatch) (*domain.ClientRequest, error) {
	req, err := s.ownedPending(ctx, client, id)
	if err != nil {
		return nil, err
	}

	updated := *req
	applyString(&updated.Title, patch.Title)
	applyString(&updated.Description, patch.Description)
	applyString(&updated.Date, patch.Date)
	applyString(&updated.Time, patch.Time)
	applyString(&updated.Location, patch.Location)
	applyString(&updated.PersonToContact, patch.PersonToContact)
	applyString(&updated.ContactInfo, patch.ContactInfo)
	applyString(&updated.ServiceNeeded, patch.ServiceNeeded)
	applyString(&updated.AttachedFile, patch.AttachedFile)
	if blank(updated.Title) {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if updated.Date != req.Date {
		if blank(updated.Date) {
			return nil, apperrors.NewValidationError("date is required", nil)
		}
		if err := s.checkDate(ctx, updated.Date); err != nil {
			return nil, err
		}
	}

	if err := s.requests.Update(ctx, &updated); err != nil {
		return nil, lookupErr(err, "request", id)
	}
	s.publish(ctx, client.DisplayName(), events.ActionUpdated, &updated)
	return &updated, nil
}

// Delete removes a pending request owned by client.
func (s *RequestService) Delete(ctx context.Context, client domain.Viewer, id string) error {
	req, err := s.ownedPending(ctx, client, id)
	if err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, id); err != nil {
		return lookupErr(err, "request", id)
	}
	s.publish(ctx, client.DisplayName(), events.ActionDeleted, req)
	return nil
}

// Approve moves a pending request to approved.
func (s *RequestService) Approve(ctx context.Context, approver domain.Viewer, id string) (*domain.ClientRequest, error) {
	return s.decide(ctx, approver, id, func(r *domain.ClientRequest) {
		at := s.now()
		r.Status = domain.RequestStatusApproved
		r.ApprovedBy = approver.DisplayName()
		r.DateApproved = &at
	})
}

// Deny moves a pending request to denied. A reason is required.
func (s *RequestService) Deny(ctx context.Context, approver domain.Viewer, id, reason string) (*domain.ClientRequest, error) {
	if blank(reason) {
		return nil, apperrors.NewValidationError("reason of denial is required", map[string]any{"id": id})
	}
	return s.decide(ctx, approver, id, func(r *domain.ClientRequest) {
		at := s.now()
		r.Status = domain.RequestStatusDenied
		r.DeniedBy = approver.DisplayName()
		r.DateDenied = &at
		r.ReasonOfDenial = strings.TrimSpace(reason)
	})
}

func (s *RequestService) decide(ctx context.Context, approver domain.Viewer, id string, mutate func(*domain.ClientRequest)) (*domain.ClientRequest, error) {
	if err := requireRole(approver, domain.RoleAdmin, domain.RoleExecutive); err != nil {
		return nil, err
	}
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "request", id)
	}
	if !req.IsPending() {
		return nil, apperrors.NewStateConflict("request already decided", map[string]any{"id": id, "status": req.Status})
	}
	updated := *req
	mutate(&updated)
	if err := s.requests.Update(ctx, &updated); err != nil {
		return nil, lookupErr(err, "request", id)
	}
	s.publish(ctx, approver.DisplayName(), events.ActionUpdated, &updated)
	return &updated, nil
}

func (s *RequestService) ownedPending(ctx context.Context, client domain.Viewer, id string) (*domain.ClientRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "request", id)
	}
	if !identity.SameEmail(req.ClientEmail, client.Email) {
		return nil, apperrors.NewForbidden("request belongs to another client")
	}
	if !req.IsPending() {
		return nil, apperrors.NewStateConflict("only pending requests can be changed", map[string]any{"id": id, "status": req.Status})
	}
	return req, nil
}

func (s *RequestService) checkDate(ctx context.Context, date string) error {
	if err := validateDate("date", date); err != nil {
		return err
	}
	if s.gate == nil {
		return nil
	}
	open, err := s.gate.CanRequest(ctx, date)
	if err != nil {
		return err
	}
	if !open {
		return apperrors.NewConflict("date is not available for requests", map[string]any{"date": date})
	}
	return nil
}

func (s *RequestService) publish(ctx context.Context, actor string, action events.Action, req *domain.ClientRequest) {
	publish(ctx, s.bus, events.Change{
		Topic:    events.TopicRequestChanged,
		Action:   action,
		EntityID: req.ID,
		Actor:    actor,
		Payload: events.RequestChangedPayload{
			Status:      req.Status,
			ClientEmail: req.ClientEmail,
			Date:        req.Date,
		},
	})
}
