package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// TeamMemberRepository stores (executiveEmail, stafferId) pairs.
type TeamMemberRepository interface {
	MembersOf(ctx context.Context, executiveEmail string) ([]domain.TeamMember, error)
	Add(ctx context.Context, member *domain.TeamMember) error
	Remove(ctx context.Context, executiveEmail, stafferID string) error
}

type teamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewTeamMemberRepository constructs repository.
func NewTeamMemberRepository(pool *pgxpool.Pool) TeamMemberRepository {
	return &teamMemberRepository{pool: pool}
}

func (r *teamMemberRepository) MembersOf(ctx context.Context, executiveEmail string) ([]domain.TeamMember, error) {
	const query = `
        SELECT executive_email, staffer_id, created_at
        FROM team_members WHERE lower(executive_email)=lower($1)
        ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, executiveEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(&member.ExecutiveEmail, &member.StafferID, &member.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *teamMemberRepository) Add(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (executive_email, staffer_id)
        VALUES ($1,$2)
        ON CONFLICT (executive_email, staffer_id) DO UPDATE SET executive_email=EXCLUDED.executive_email
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query, member.ExecutiveEmail, member.StafferID).Scan(&member.CreatedAt)
}

func (r *teamMemberRepository) Remove(ctx context.Context, executiveEmail, stafferID string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE lower(executive_email)=lower($1) AND staffer_id=$2`, executiveEmail, stafferID)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}
