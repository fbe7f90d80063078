package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/repo/postgres"
	"github.com/minervatires/site-api/internal/timeconv"
	"github.com/minervatires/site-api/pkg/logger"
)

// BookingService runs the booking submission pipeline: sanitize,
// validate, duplicate pre-flight, insert. One insert attempt per
// accepted request, no partial writes.
type BookingService interface {
	Submit(ctx context.Context, raw *domain.BookingRequest) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	SetStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error)
}

type bookingService struct {
	repo        postgres.BookingRepository
	phoneFormat *regexp.Regexp
	now         func() time.Time
}

var (
	emailFormat = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	timeFormat  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
)

func NewBookingService(repo postgres.BookingRepository, phonePrefix string) BookingService {
	return &bookingService{
		repo:        repo,
		phoneFormat: regexp.MustCompile(`^` + regexp.QuoteMeta(phonePrefix) + `\d{9,10}$`),
		now:         time.Now,
	}
}

func (s *bookingService) Submit(ctx context.Context, raw *domain.BookingRequest) (int64, error) {
	req := sanitize(raw)

	if violations := s.validate(req); len(violations) > 0 {
		return 0, &ValidationError{Violations: violations}
	}

	// Pre-flight duplicate check. The storage-level unique index is the
	// actual guarantee; this keeps the expected duplicate path cheap.
	exists, err := s.repo.ExistsActive(ctx, req.UserEmail, req.Service, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return 0, fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		return 0, ErrDuplicateBooking
	}

	var note *string
	if req.Note != "" {
		note = &req.Note
	}
	id, err := s.repo.Create(ctx, &domain.Booking{
		UserName:               req.UserName,
		UserEmail:              req.UserEmail,
		Phone:                  req.Phone,
		Service:                req.Service,
		AppointmentDate:        req.AppointmentDate,
		AppointmentTime:        req.AppointmentTime,
		AppointmentTimeDisplay: req.AppointmentTimeDisplay,
		Note:                   note,
	})
	if err != nil {
		if errors.Is(err, postgres.ErrDuplicateBooking) {
			return 0, ErrDuplicateBooking
		}
		return 0, fmt.Errorf("create booking: %w", err)
	}

	logger.InfoContext(ctx, "booking created",
		"booking_id", id,
		"email", req.UserEmail,
		"service", req.Service,
		"time", req.AppointmentTimeDisplay,
	)
	return id, nil
}

func (s *bookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookingService) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *bookingService) SetStatus(ctx context.Context, id int64, status domain.BookingStatus) (bool, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

// sanitize trims every field, strips markup from free text, normalizes
// the phone to "+" and digits, and converts the time to canonical form.
// An unparseable time is left as submitted so validation can report it
// alongside any other violations.
func sanitize(raw *domain.BookingRequest) *domain.BookingRequest {
	req := &domain.BookingRequest{
		UserName:        html.EscapeString(strings.TrimSpace(raw.UserName)),
		UserEmail:       strings.TrimSpace(raw.UserEmail),
		Phone:           normalizePhone(raw.Phone),
		Service:         html.EscapeString(strings.TrimSpace(raw.Service)),
		AppointmentDate: strings.TrimSpace(raw.AppointmentDate),
		Note:            html.EscapeString(strings.TrimSpace(raw.Note)),
	}

	submitted := strings.TrimSpace(raw.AppointmentTime)
	canonical, err := timeconv.To24Hour(submitted)
	if err != nil {
		req.AppointmentTime = submitted
	} else {
		req.AppointmentTime = canonical
	}

	if display := strings.TrimSpace(raw.AppointmentTimeDisplay); display != "" {
		req.AppointmentTimeDisplay = html.EscapeString(display)
	} else if err == nil {
		// Derived form is stored so later redisplay needs no conversion.
		req.AppointmentTimeDisplay, _ = timeconv.To12Hour(canonical)
	}

	return req
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validate checks the sanitized request and accumulates every violation
// instead of stopping at the first.
func (s *bookingService) validate(req *domain.BookingRequest) []string {
	var violations []string

	required := []struct {
		field string
		value string
	}{
		{"user_name", req.UserName},
		{"user_email", req.UserEmail},
		{"phone", req.Phone},
		{"service", req.Service},
		{"appointment_date", req.AppointmentDate},
		{"appointment_time", req.AppointmentTime},
	}
	for _, f := range required {
		if f.value == "" {
			violations = append(violations, fmt.Sprintf("Field '%s' is required", f.field))
		}
	}

	if req.UserEmail != "" && !emailFormat.MatchString(req.UserEmail) {
		violations = append(violations, "Invalid email format")
	}

	if req.Phone != "" && !s.phoneFormat.MatchString(req.Phone) {
		violations = append(violations, "Invalid phone number format")
	}

	if req.AppointmentDate != "" {
		date, err := time.Parse(domain.DateFormat, req.AppointmentDate)
		today, _ := time.Parse(domain.DateFormat, s.now().Format(domain.DateFormat))
		if err != nil || date.Before(today) {
			violations = append(violations, "Appointment date must be today or in the future")
		}
	}

	if req.AppointmentTime != "" && !timeFormat.MatchString(req.AppointmentTime) {
		violations = append(violations, "Invalid time format")
	}

	return violations
}
