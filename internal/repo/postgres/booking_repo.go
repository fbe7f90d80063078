package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minervatires/site-api/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (int64, error)
	ExistsActive(ctx context.Context, email, service, date, timeOfDay string) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingCols = `id, status,
user_name, user_email, phone,
service,
to_char(appointment_date, 'YYYY-MM-DD'),
to_char(appointment_time, 'HH24:MI:SS'),
appointment_time_display,
note, created_at`

const uniqueViolation = "23505"

// Create inserts a new appointment with status forced to Pending. The
// partial unique index on (user_email, service, appointment_date,
// appointment_time) WHERE status <> 'Cancelled' closes the window between
// the pre-flight duplicate check and the insert; a violation surfaces as
// ErrDuplicateBooking.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) (int64, error) {
	const q = `INSERT INTO appointment (
		user_name, user_email, phone,
		service, appointment_date, appointment_time, appointment_time_display,
		note, status
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'Pending')
	RETURNING id`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var id int64
	err := r.pool.QueryRow(ctx, q,
		b.UserName, b.UserEmail, b.Phone,
		b.Service, b.AppointmentDate, b.AppointmentTime, b.AppointmentTimeDisplay,
		b.Note,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrDuplicateBooking
		}
		return 0, err
	}
	return id, nil
}

// ExistsActive is the pre-flight duplicate check. It keeps the common
// duplicate submission out of the insert path; the unique index remains
// the correctness mechanism.
func (r *bookingRepository) ExistsActive(ctx context.Context, email, service, date, timeOfDay string) (bool, error) {
	const q = `SELECT EXISTS (
		SELECT 1 FROM appointment
		WHERE user_email = $1
		  AND service = $2
		  AND appointment_date = $3
		  AND appointment_time = $4
		  AND status <> 'Cancelled'
	)`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var exists bool
	err := r.pool.QueryRow(ctx, q, email, service, date, timeOfDay).Scan(&exists)
	return exists, err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM appointment WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	b, err := scanBooking(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return b, err
}

func (r *bookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	q := `SELECT ` + bookingCols + ` FROM appointment`
	args := []any{}
	if filter.Status != nil {
		q += ` WHERE status = $1 ORDER BY appointment_date, appointment_time LIMIT $2 OFFSET $3`
		args = append(args, *filter.Status, limit, offset)
	} else {
		q += ` ORDER BY appointment_date, appointment_time LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	const q = `UPDATE appointment SET status = $1 WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.Status,
		&b.UserName, &b.UserEmail, &b.Phone,
		&b.Service, &b.AppointmentDate, &b.AppointmentTime, &b.AppointmentTimeDisplay,
		&b.Note, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
