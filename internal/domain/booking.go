package domain

import "time"

type BookingStatus string

// Status values match the appointment table contents used by the admin tooling.
const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking is a persisted service appointment.
type Booking struct {
	ID     int64         `json:"id"`
	Status BookingStatus `json:"status"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Phone     string `json:"phone"`

	Service         string `json:"service"`
	AppointmentDate string `json:"appointment_date"` // YYYY-MM-DD
	// AppointmentTime is the canonical HH:MM:SS form used for comparisons;
	// AppointmentTimeDisplay is the 12-hour form shown back to the customer.
	AppointmentTime        string  `json:"appointment_time"`
	AppointmentTimeDisplay string  `json:"appointment_time_display"`
	Note                   *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status != BookingCancelled
}

// BookingRequest carries one raw form submission. It is discarded after
// processing; only the sanitized fields reach storage.
type BookingRequest struct {
	UserName               string `json:"user_name"`
	UserEmail              string `json:"user_email"`
	Phone                  string `json:"phone"`
	Service                string `json:"service"`
	AppointmentDate        string `json:"appointment_date"`
	AppointmentTime        string `json:"appointment_time"`
	AppointmentTimeDisplay string `json:"appointment_time_display"`
	Note                   string `json:"note"`
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Status *BookingStatus
	Limit  int
	Offset int
}

const DateFormat = "2006-01-02"
