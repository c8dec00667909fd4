package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// RequestRepository stores client requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ClientRequest) error
	Update(ctx context.Context, req *domain.ClientRequest) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ClientRequest, error)
	List(ctx context.Context) ([]domain.ClientRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.ClientRequest, error)
}

type requestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository constructs repository.
func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &requestRepository{pool: pool}
}

const requestColumns = `id, title, description, date, time, location, person_to_contact, contact_info,
        service_needed, attached_file, status, client_email, client_name, approved_by, date_approved,
        denied_by, date_denied, reason_of_denial, created_at`

func (r *requestRepository) Create(ctx context.Context, req *domain.ClientRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO client_requests (id, title, description, date, time, location, person_to_contact,
            contact_info, service_needed, attached_file, status, client_email, client_name)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING created_at`
	return r.pool.QueryRow(ctx, query,
		req.ID,
		req.Title,
		req.Description,
		req.Date,
		req.Time,
		req.Location,
		req.PersonToContact,
		req.ContactInfo,
		req.ServiceNeeded,
		req.AttachedFile,
		req.Status,
		req.ClientEmail,
		req.ClientName,
	).Scan(&req.CreatedAt)
}

func (r *requestRepository) Update(ctx context.Context, req *domain.ClientRequest) error {
	const query = `
        UPDATE client_requests SET title=$1, description=$2, date=$3, time=$4, location=$5,
            person_to_contact=$6, contact_info=$7, service_needed=$8, attached_file=$9, status=$10,
            approved_by=$11, date_approved=$12, denied_by=$13, date_denied=$14, reason_of_denial=$15
        WHERE id=$16`
	cmd, err := r.pool.Exec(ctx, query,
		req.Title,
		req.Description,
		req.Date,
		req.Time,
		req.Location,
		req.PersonToContact,
		req.ContactInfo,
		req.ServiceNeeded,
		req.AttachedFile,
		req.Status,
		req.ApprovedBy,
		req.DateApproved,
		req.DeniedBy,
		req.DateDenied,
		req.ReasonOfDenial,
		req.ID,
	)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM client_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.ClientRequest, error) {
	req, err := scanRequest(r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM client_requests WHERE id=$1`, id))
	return req, notFound(err)
}

func (r *requestRepository) List(ctx context.Context) ([]domain.ClientRequest, error) {
	return r.query(ctx, `SELECT `+requestColumns+` FROM client_requests ORDER BY date, created_at`)
}

func (r *requestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.ClientRequest, error) {
	return r.query(ctx, `SELECT `+requestColumns+` FROM client_requests WHERE status=$1 ORDER BY date, created_at`, status)
}

func (r *requestRepository) query(ctx context.Context, query string, args ...any) ([]domain.ClientRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClientRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	return result, rows.Err()
}

func scanRequest(row pgx.Row) (*domain.ClientRequest, error) {
	var req domain.ClientRequest
	if err := row.Scan(
		&req.ID,
		&req.Title,
		&req.Description,
		&req.Date,
		&req.Time,
		&req.Location,
		&req.PersonToContact,
		&req.ContactInfo,
		&req.ServiceNeeded,
		&req.AttachedFile,
		&req.Status,
		&req.ClientEmail,
		&req.ClientName,
		&req.ApprovedBy,
		&req.DateApproved,
		&req.DeniedBy,
		&req.DateDenied,
		&req.ReasonOfDenial,
		&req.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}
