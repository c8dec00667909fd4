package service

import (
	"context"

	"github.com/spec-kit/schedule-service/internal/calendar"
	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// CalendarService loads the entities a viewer's calendar is built from and composes
// the visible set.
type CalendarService struct {
	events      repository.AdminEventRepository
	assignments repository.AssignmentRepository
	requests    repository.RequestRepository
	team        *TeamService
}

// CalendarDependencies bundles repositories.
type CalendarDependencies struct {
	EventRepo      repository.AdminEventRepository
	AssignmentRepo repository.AssignmentRepository
	RequestRepo    repository.RequestRepository
	Team           *TeamService
}

// NewCalendarService creates the service.
func NewCalendarService(deps CalendarDependencies) *CalendarService {
	return &CalendarService{
		events:      deps.EventRepo,
		assignments: deps.AssignmentRepo,
		requests:    deps.RequestRepo,
		team:        deps.Team,
	}
}

// Visible returns the calendar items viewer may see.
func (s *CalendarService) Visible(ctx context.Context, viewer domain.Viewer, opts calendar.Options) (calendar.View, error) {
	var snap calendar.Snapshot
	var err error

	needEvents := viewer.Role != domain.RoleClient && viewer.Role != domain.RoleSectionHead
	needAssignments := viewer.Role == domain.RoleExecutive || viewer.Role == domain.RoleSectionHead || viewer.Role == domain.RoleAdmin
	needRequests := viewer.Role == domain.RoleClient || viewer.Role == domain.RoleAdmin

	if needEvents {
		if snap.Events, err = s.events.List(ctx); err != nil {
			return calendar.View{}, apperrors.MapError(err)
		}
	}
	if needAssignments {
		if snap.Assignments, err = s.assignments.List(ctx); err != nil {
			return calendar.View{}, apperrors.MapError(err)
		}
	}
	if needRequests {
		if snap.Requests, err = s.requests.List(ctx); err != nil {
			return calendar.View{}, apperrors.MapError(err)
		}
	}
	if viewer.Role == domain.RoleExecutive && s.team != nil {
		if snap.Team, err = s.team.MemberTokens(ctx, viewer); err != nil {
			return calendar.View{}, err
		}
	}
	return calendar.Visible(viewer, snap, opts), nil
}
