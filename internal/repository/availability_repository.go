package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/schedule-service/internal/domain"
)

// AvailabilityRepository stores at most one availability record per date.
type AvailabilityRepository interface {
	List(ctx context.Context) ([]domain.ClientAvailability, error)
	Get(ctx context.Context, date string) (*domain.ClientAvailability, error)
	Set(ctx context.Context, record *domain.ClientAvailability) error
	Delete(ctx context.Context, date string) error
}

const (
	availabilityKeyPrefix = "availability:date:" // availability:date:{date} -> JSON record
	availabilityIndexKey  = "availability:dates" // set of dates with a record
)

type redisAvailabilityRepository struct {
	client *redis.Client
}

// NewRedisAvailabilityRepository stores availability as one JSON value per date.
func NewRedisAvailabilityRepository(client *redis.Client) AvailabilityRepository {
	return &redisAvailabilityRepository{client: client}
}

func (r *redisAvailabilityRepository) List(ctx context.Context) ([]domain.ClientAvailability, error) {
	dates, err := r.client.SMembers(ctx, availabilityIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list availability dates: %w", err)
	}
	if len(dates) == 0 {
		return nil, nil
	}
	sort.Strings(dates)

	keys := make([]string, len(dates))
	for i, date := range dates {
		keys[i] = availabilityKey(date)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}

	result := make([]domain.ClientAvailability, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry outlived its record
			continue
		}
		var record domain.ClientAvailability
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("decode availability: %w", err)
		}
		result = append(result, record)
	}
	return result, nil
}

func (r *redisAvailabilityRepository) Get(ctx context.Context, date string) (*domain.ClientAvailability, error) {
	raw, err := r.client.Get(ctx, availabilityKey(date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	var record domain.ClientAvailability
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	return &record, nil
}

func (r *redisAvailabilityRepository) Set(ctx context.Context, record *domain.ClientAvailability) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode availability: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, availabilityKey(record.Date), data, 0)
		pipe.SAdd(ctx, availabilityIndexKey, record.Date)
		return nil
	})
	if err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	return nil
}

func (r *redisAvailabilityRepository) Delete(ctx context.Context, date string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, availabilityKey(date))
		pipe.SRem(ctx, availabilityIndexKey, date)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}
	return rowsAffected(del.Val())
}

func availabilityKey(date string) string {
	return availabilityKeyPrefix + date
}

type postgresAvailabilityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAvailabilityRepository keeps availability in the client_availability table.
func NewPostgresAvailabilityRepository(pool *pgxpool.Pool) AvailabilityRepository {
	return &postgresAvailabilityRepository{pool: pool}
}

func (r *postgresAvailabilityRepository) List(ctx context.Context) ([]domain.ClientAvailability, error) {
	rows, err := r.pool.Query(ctx, `SELECT date, available, notes FROM client_availability ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClientAvailability
	for rows.Next() {
		var record domain.ClientAvailability
		if err := rows.Scan(&record.Date, &record.Available, &record.Notes); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *postgresAvailabilityRepository) Get(ctx context.Context, date string) (*domain.ClientAvailability, error) {
	var record domain.ClientAvailability
	err := r.pool.QueryRow(ctx, `SELECT date, available, notes FROM client_availability WHERE date=$1`, date).
		Scan(&record.Date, &record.Available, &record.Notes)
	if err != nil {
		return nil, notFound(err)
	}
	return &record, nil
}

func (r *postgresAvailabilityRepository) Set(ctx context.Context, record *domain.ClientAvailability) error {
	const query = `
        INSERT INTO client_availability (date, available, notes)
        VALUES ($1,$2,$3)
        ON CONFLICT (date) DO UPDATE SET available=EXCLUDED.available, notes=EXCLUDED.notes`
	_, err := r.pool.Exec(ctx, query, record.Date, record.Available, record.Notes)
	return err
}

func (r *postgresAvailabilityRepository) Delete(ctx context.Context, date string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM client_availability WHERE date=$1`, date)
	if err != nil {
		return err
	}
	return rowsAffected(cmd.RowsAffected())
}
