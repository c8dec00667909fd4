package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// InvitationRepository stores invitations for request-derived assignments.
type InvitationRepository interface {
	Create(ctx context.Context, inv *domain.Invitation) error
	Update(ctx context.Context, inv *domain.Invitation) error
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	ListByAssignment(ctx context.Context, assignmentID string) ([]domain.Invitation, error)
	DeleteByAssignment(ctx context.Context, assignmentID string) error
}

type invitationRepository struct {
	pool *pgxpool.Pool
}

// NewInvitationRepository constructs repository.
func NewInvitationRepository(pool *pgxpool.Pool) InvitationRepository {
	return &invitationRepository{pool: pool}
}

const invitationColumns = `id, assignment_id, request_id, invited_to, invited_to_name, invited_by, invited_by_name, status, created_at`

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO invitations (id, assignment_id, request_id, invited_to, invited_to_name, invited_by, invited_by_name, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		inv.ID,
		inv.AssignmentID,
		inv.RequestID,
		inv.InvitedTo,
		inv.InvitedToName,
		inv.InvitedBy,
		inv.InvitedByName,
		inv.Status,
	).Scan(&inv.CreatedAt)
}

func (r *invitationRepository) Update(ctx context.Context, inv *domain.Invitation) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE invitations SET status=$1 WHERE id=$2`, inv.Status, inv.ID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	inv, err := scanInvitation(r.pool.QueryRow(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE id=$1`, id))
	return inv, notFound(err)
}

func (r *invitationRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]domain.Invitation, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE assignment_id=$1 ORDER BY created_at`, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *inv)
	}
	return result, rows.Err()
}

func (r *invitationRepository) DeleteByAssignment(ctx context.Context, assignmentID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invitations WHERE assignment_id=$1`, assignmentID)
	return err
}

func scanInvitation(row pgx.Row) (*domain.Invitation, error) {
	var inv domain.Invitation
	if err := row.Scan(
		&inv.ID,
		&inv.AssignmentID,
		&inv.RequestID,
		&inv.InvitedTo,
		&inv.InvitedToName,
		&inv.InvitedBy,
		&inv.InvitedByName,
		&inv.Status,
		&inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}
