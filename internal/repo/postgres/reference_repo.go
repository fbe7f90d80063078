package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minervatires/site-api/internal/domain"
)

type ReferenceRepository interface {
	GetContactInfo(ctx context.Context) (*domain.ContactInfo, error)
	ListBusinessHours(ctx context.Context) ([]domain.BusinessHour, error)
}

type referenceRepository struct {
	pool *pgxpool.Pool
}

func NewReferenceRepository(pool *pgxpool.Pool) ReferenceRepository {
	return &referenceRepository{pool: pool}
}

func (r *referenceRepository) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	const q = `SELECT email, phone_globe, phone_smart, phone_landline, address
	FROM getintouch ORDER BY id LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var info domain.ContactInfo
	err := r.pool.QueryRow(ctx, q).Scan(
		&info.Email, &info.PhoneGlobe, &info.PhoneSmart, &info.PhoneLandline, &info.Address,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ListBusinessHours returns the weekly schedule in fixed calendar-week
// order, Monday first, regardless of row insertion order.
func (r *referenceRepository) ListBusinessHours(ctx context.Context) ([]domain.BusinessHour, error) {
	const q = `SELECT day,
		to_char(open_time, 'HH24:MI:SS'),
		to_char(close_time, 'HH24:MI:SS'),
		is_closed
	FROM business_hours
	ORDER BY array_position(
		ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day)`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []domain.BusinessHour
	for rows.Next() {
		var h domain.BusinessHour
		if err := rows.Scan(&h.Day, &h.OpenTime, &h.CloseTime, &h.IsClosed); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}
