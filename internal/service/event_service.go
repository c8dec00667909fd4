package service

import (
	"context"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// EventService manages the admin calendar.
type EventService struct {
	events   repository.AdminEventRepository
	staffers repository.StafferRepository
	bus      events.Bus
}

// EventDependencies bundles repositories.
type EventDependencies struct {
	EventRepo   repository.AdminEventRepository
	StafferRepo repository.StafferRepository
	Bus         events.Bus
}

// NewEventService creates the service.
func NewEventService(deps EventDependencies) *EventService {
	return &EventService{events: deps.EventRepo, staffers: deps.StafferRepo, bus: deps.Bus}
}

// EventInput describes an admin event.
type EventInput struct {
	Title       string
	Description string
	Location    string
	Start       string
	StafferID   string
}

// List returns every admin event.
func (s *EventService) List(ctx context.Context) ([]domain.AdminEvent, error) {
	list, err := s.events.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// Create adds an event to the admin calendar, optionally targeted at one staffer.
func (s *EventService) Create(ctx context.Context, actor domain.Viewer, input EventInput) (*domain.AdminEvent, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if blank(input.Title) {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	event := &domain.AdminEvent{
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		Start:          input.Start,
		StafferID:      input.StafferID,
		AssignedByName: actor.DisplayName(),
	}
	if err := validateDate("start", event.Date()); err != nil {
		return nil, err
	}
	if event.Targeted() {
		if _, err := s.staffers.GetByID(ctx, input.StafferID); err != nil {
			return nil, lookupErr(err, "staffer", input.StafferID)
		}
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.bus, events.Change{
		Topic:    events.TopicEventChanged,
		Action:   events.ActionCreated,
		EntityID: event.ID,
		Actor:    actor.DisplayName(),
		Payload:  events.EventChangedPayload{StafferID: event.StafferID, Start: event.Start},
	})
	return event, nil
}
