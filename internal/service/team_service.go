package service

import (
	"context"
	"errors"

	"github.com/spec-kit/schedule-service/internal/domain"
	"github.com/spec-kit/schedule-service/internal/identity"
	"github.com/spec-kit/schedule-service/internal/repository"
	apperrors "github.com/spec-kit/schedule-service/pkg/util/errorutil"
)

// TeamService resolves which staffers belong to an executive's team.
type TeamService struct {
	team     repository.TeamMemberRepository
	staffers repository.StafferRepository
	now      Clock
}

// TeamDependencies bundles repositories.
type TeamDependencies struct {
	TeamRepo    repository.TeamMemberRepository
	StafferRepo repository.StafferRepository
	Clock       Clock
}

// NewTeamService creates the service.
func NewTeamService(deps TeamDependencies) *TeamService {
	return &TeamService{team: deps.TeamRepo, staffers: deps.StafferRepo, now: defaultClock(deps.Clock)}
}

// TeamOf returns the staffers on the executive's team. Members whose staffer record
// no longer exists are skipped. An executive without an email has no team.
func (s *TeamService) TeamOf(ctx context.Context, executive domain.Viewer) ([]domain.Staffer, error) {
	if blank(executive.Email) {
		return []domain.Staffer{}, nil
	}
	members, err := s.team.MembersOf(ctx, executive.Email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	staffers := make([]domain.Staffer, 0, len(members))
	for _, m := range members {
		staffer, err := s.staffers.GetByID(ctx, m.StafferID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		staffers = append(staffers, *staffer)
	}
	return staffers, nil
}

// MemberTokens returns one token set per team member: the stored staffer id plus the
// id and email of the staffer record when it resolves.
func (s *TeamService) MemberTokens(ctx context.Context, executive domain.Viewer) ([]identity.Set, error) {
	if blank(executive.Email) {
		return nil, nil
	}
	members, err := s.team.MembersOf(ctx, executive.Email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	sets := make([]identity.Set, 0, len(members))
	for _, m := range members {
		tokens := identity.NewSet(m.StafferID)
		staffer, err := s.staffers.GetByID(ctx, m.StafferID)
		switch {
		case err == nil:
			tokens.Add(staffer.ID)
			tokens.Add(staffer.Email)
		case !errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.MapError(err)
		}
		sets = append(sets, tokens)
	}
	return sets, nil
}

// IsTeamMember reports whether staffer is on the executive's team.
func (s *TeamService) IsTeamMember(ctx context.Context, executive domain.Viewer, staffer domain.Staffer) (bool, error) {
	sets, err := s.MemberTokens(ctx, executive)
	if err != nil {
		return false, err
	}
	target := staffer.Person().Tokens()
	for _, member := range sets {
		if identity.Matches(member, target) {
			return true, nil
		}
	}
	return false, nil
}

// AddMember puts a staffer on the actor's team.
func (s *TeamService) AddMember(ctx context.Context, actor domain.Viewer, stafferID string) (*domain.TeamMember, error) {
	if err := requireRole(actor, domain.RoleExecutive, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if blank(actor.Email) {
		return nil, apperrors.NewValidationError("executive email required", nil)
	}
	if _, err := s.staffers.GetByID(ctx, stafferID); err != nil {
		return nil, lookupErr(err, "staffer", stafferID)
	}
	member := &domain.TeamMember{ExecutiveEmail: actor.Email, StafferID: stafferID, CreatedAt: s.now()}
	if err := s.team.Add(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// RemoveMember takes a staffer off the actor's team.
func (s *TeamService) RemoveMember(ctx context.Context, actor domain.Viewer, stafferID string) error {
	if err := requireRole(actor, domain.RoleExecutive, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.team.Remove(ctx, actor.Email, stafferID); err != nil {
		return lookupErr(err, "team member", stafferID)
	}
	return nil
}
