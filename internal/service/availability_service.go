package service

import (
	"context"
	"errors"

	"github.com/spec-kit/schedule-service/internal/calendar"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// AvailabilityService gates client request creation by date.
type AvailabilityService struct {
	availability repository.AvailabilityRepository
	requests     repository.RequestRepository
	bus          events.Bus
}

// AvailabilityDependencies bundles repositories.
type AvailabilityDependencies struct {
	AvailabilityRepo repository.AvailabilityRepository
	RequestRepo      repository.RequestRepository
	Bus              events.Bus
}

// NewAvailabilityService creates the service.
func NewAvailabilityService(deps AvailabilityDependencies) *AvailabilityService {
	return &AvailabilityService{
		availability: deps.AvailabilityRepo,
		requests:     deps.RequestRepo,
		bus:          deps.Bus,
	}
}

// CanRequest reports whether new client requests are accepted for date. Any date
// without a record is open, including strings that are not YYYY-MM-DD dates; format
// checks belong to the caller.
func (s *AvailabilityService) CanRequest(ctx context.Context, date string) (bool, error) {
	record, err := s.availability.Get(ctx, date)
	if errors.Is(err, repository.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, apperrors.MapError(err)
	}
	return record.Available, nil
}

// List returns every availability record ordered by date.
func (s *AvailabilityService) List(ctx context.Context) ([]domain.ClientAvailability, error) {
	records, err := s.availability.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return records, nil
}

// SetAvailability creates or overwrites the record for date.
func (s *AvailabilityService) SetAvailability(ctx context.Context, actor domain.Viewer, date string, available bool, notes string) (*domain.ClientAvailability, error) {
	if err := requireRole(actor, domain.RoleAdmin, domain.RoleExecutive); err != nil {
		return nil, err
	}
	if err := validateDate("date", date); err != nil {
		return nil, err
	}
	record := &domain.ClientAvailability{Date: date, Available: available, Notes: notes}
	if err := s.availability.Set(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}
	publish(ctx, s.bus, events.Change{
		Topic:    events.TopicAvailabilityChanged,
		Action:   events.ActionUpdated,
		EntityID: date,
		Actor:    actor.DisplayName(),
		Payload:  events.AvailabilityChangedPayload{Date: date, Available: &available},
	})
	return record, nil
}

// DeleteAvailability removes the record for date, reopening it.
func (s *AvailabilityService) DeleteAvailability(ctx context.Context, actor domain.Viewer, date string) error {
	if err := requireRole(actor, domain.RoleAdmin, domain.RoleExecutive); err != nil {
		return err
	}
	if err := s.availability.Delete(ctx, date); err != nil {
		return lookupErr(err, "availability", date)
	}
	publish(ctx, s.bus, events.Change{
		Topic:    events.TopicAvailabilityChanged,
		Action:   events.ActionDeleted,
		EntityID: date,
		Actor:    actor.DisplayName(),
		Payload:  events.AvailabilityChangedPayload{Date: date},
	})
	return nil
}

// Overview returns availability markers and request-count markers, optionally for a
// single month ("2006-01").
func (s *AvailabilityService) Overview(ctx context.Context, month string) ([]domain.CalendarItem, error) {
	records, err := s.availability.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return calendar.Overview(records, requests, month), nil
}
