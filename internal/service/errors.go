package service

import (
	"errors"
	"strings"
)

// ValidationError accumulates every field violation found in a
// submission. Violations are user-facing and reported together.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

var (
	// ErrDuplicateBooking rejects a second active booking for the same
	// (email, service, date, time) tuple.
	ErrDuplicateBooking = errors.New("a booking with the same details already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
