package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// AdminEventRepository reads the admin calendar.
type AdminEventRepository interface {
	List(ctx context.Context) ([]domain.AdminEvent, error)
	Create(ctx context.Context, event *domain.AdminEvent) error
}

type adminEventRepository struct {
	pool *pgxpool.Pool
}

// NewAdminEventRepository constructs repository.
func NewAdminEventRepository(pool *pgxpool.Pool) AdminEventRepository {
	return &adminEventRepository{pool: pool}
}

func (r *adminEventRepository) List(ctx context.Context) ([]domain.AdminEvent, error) {
	const query = `
        SELECT id, title, description, location, start, staffer_id, assigned_by_name
        FROM admin_events ORDER BY start`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdminEvent
	for rows.Next() {
		var e domain.AdminEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Start, &e.StafferID, &e.AssignedByName); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *adminEventRepository) Create(ctx context.Context, event *domain.AdminEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO admin_events (id, title, description, location, start, staffer_id, assigned_by_name)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Start,
		event.StafferID,
		event.AssignedByName,
	)
	return err
}
