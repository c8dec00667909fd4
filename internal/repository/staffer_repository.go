package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// StafferRepository is the staff directory.
type StafferRepository interface {
	Create(ctx context.Context, staffer *domain.Staffer) error
	List(ctx context.Context) ([]domain.Staffer, error)
	GetByID(ctx context.Context, id string) (*domain.Staffer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Staffer, error)
}

type stafferRepository struct {
	pool *pgxpool.Pool
}

// NewStafferRepository instantiates the repository.
func NewStafferRepository(pool *pgxpool.Pool) StafferRepository {
	return &stafferRepository{pool: pool}
}

const stafferColumns = `id, first_name, last_name, email, position, section, avatar, created_at`

func (r *stafferRepository) Create(ctx context.Context, staffer *domain.Staffer) error {
	if staffer.ID == "" {
		staffer.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO staffers (id, first_name, last_name, email, position, section, avatar)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		staffer.ID,
		staffer.FirstName,
		staffer.LastName,
		staffer.Email,
		staffer.Position,
		staffer.Section,
		staffer.Avatar,
	).Scan(&staffer.CreatedAt)
}

func (r *stafferRepository) List(ctx context.Context) ([]domain.Staffer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+stafferColumns+` FROM staffers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Staffer
	for rows.Next() {
		staffer, err := scanStaffer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *staffer)
	}
	return result, rows.Err()
}

func (r *stafferRepository) GetByID(ctx context.Context, id string) (*domain.Staffer, error) {
	staffer, err := scanStaffer(r.pool.QueryRow(ctx, `SELECT `+stafferColumns+` FROM staffers WHERE id=$1`, id))
	return staffer, notFound(err)
}

func (r *stafferRepository) GetByEmail(ctx context.Context, email string) (*domain.Staffer, error) {
	staffer, err := scanStaffer(r.pool.QueryRow(ctx, `SELECT `+stafferColumns+` FROM staffers WHERE lower(email)=lower($1)`, email))
	return staffer, notFound(err)
}

func scanStaffer(row pgx.Row) (*domain.Staffer, error) {
	var staffer domain.Staffer
	if err := row.Scan(
		&staffer.ID,
		&staffer.FirstName,
		&staffer.LastName,
		&staffer.Email,
		&staffer.Position,
		&staffer.Section,
		&staffer.Avatar,
		&staffer.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &staffer, nil
}
