package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

// Set bundles every store collaborator the services depend on.
type Set struct {
	Staffers     StafferRepository
	Users        UserRepository
	Requests     RequestRepository
	Availability AvailabilityRepository
	Assignments  AssignmentRepository
	Invitations  InvitationRepository
	Team         TeamMemberRepository
	Events       AdminEventRepository
}

// NewPostgresSet builds Postgres-backed repositories sharing one pool.
func NewPostgresSet(pool *pgxpool.Pool) Set {
	return Set{
		Staffers:     NewStafferRepository(pool),
		Users:        NewUserRepository(pool),
		Requests:     NewRequestRepository(pool),
		Availability: NewPostgresAvailabilityRepository(pool),
		Assignments:  NewAssignmentRepository(pool),
		Invitations:  NewInvitationRepository(pool),
		Team:         NewTeamMemberRepository(pool),
		Events:       NewAdminEventRepository(pool),
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func rowsAffected(n int64) error {
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
