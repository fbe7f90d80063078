package postgres

import "errors"

// ErrDuplicateBooking maps the appointment uniqueness constraint:
// one active booking per (email, service, date, time).
var ErrDuplicateBooking = errors.New("duplicate booking")
