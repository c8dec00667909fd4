package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// AssignmentRepository stores assignments. Delete removes the row entirely.
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.Assignment) error
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	List(ctx context.Context) ([]domain.Assignment, error)
}

type assignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository constructs repository.
func NewAssignmentRepository(pool *pgxpool.Pool) AssignmentRepository {
	return &assignmentRepository{pool: pool}
}

const assignmentColumns = `id, request_id, assigned_to, assigned_to_id, assigned_to_email, assigned_to_name,
        section, assigned_by, assigned_by_email, task_title, task_date, task_time, task_location, notes,
        status, assigned_at, rejected_by, rejected_at, rejection_reason`

func (r *assignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO assignments (` + assignmentColumns + `)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`
	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.RequestID,
		a.AssignedTo,
		a.AssignedToID,
		a.AssignedToEmail,
		a.AssignedToName,
		a.Section,
		a.AssignedBy,
		a.AssignedByEmail,
		a.TaskTitle,
		a.TaskDate,
		a.TaskTime,
		a.TaskLocation,
		a.Notes,
		a.Status,
		a.AssignedAt,
		a.RejectedBy,
		a.RejectedAt,
		a.RejectionReason,
	)
	return err
}

func (r *assignmentRepository) Update(ctx context.Context, a *domain.Assignment) error {
	const query = `
        UPDATE assignments SET request_id=$1, assigned_to=$2, assigned_to_id=$3, assigned_to_email=$4,
            assigned_to_name=$5, section=$6, task_title=$7, task_date=$8, task_time=$9, task_location=$10,
            notes=$11, status=$12, rejected_by=$13, rejected_at=$14, rejection_reason=$15
        WHERE id=$16`
	cmd, err := r.pool.Exec(ctx, query,
		a.RequestID,
		a.AssignedTo,
		a.AssignedToID,
		a.AssignedToEmail,
		a.AssignedToName,
		a.Section,
		a.TaskTitle,
		a.TaskDate,
		a.TaskTime,
		a.TaskLocation,
		a.Notes,
		a.Status,
		a.RejectedBy,
		a.RejectedAt,
		a.RejectionReason,
		a.ID,
	)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	a, err := scanAssignment(r.pool.QueryRow(ctx, `SELECT `+assignmentColumns+` FROM assignments WHERE id=$1`, id))
	return a, notFound(err)
}

func (r *assignmentRepository) List(ctx context.Context) ([]domain.Assignment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+assignmentColumns+` FROM assignments ORDER BY assigned_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := row.Scan(
		&a.ID,
		&a.RequestID,
		&a.AssignedTo,
		&a.AssignedToID,
		&a.AssignedToEmail,
		&a.AssignedToName,
		&a.Section,
		&a.AssignedBy,
		&a.AssignedByEmail,
		&a.TaskTitle,
		&a.TaskDate,
		&a.TaskTime,
		&a.TaskLocation,
		&a.Notes,
		&a.Status,
		&a.AssignedAt,
		&a.RejectedBy,
		&a.RejectedAt,
		&a.RejectionReason,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
