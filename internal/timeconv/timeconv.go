// Package timeconv converts appointment times between the canonical
// 24-hour form used for storage ("HH:MM:SS") and the 12-hour form
// shown to customers ("h:mm AM/PM").
package timeconv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedTime = errors.New("malformed time")

// To24Hour normalizes a submitted time to canonical "HH:MM:SS".
// It accepts "h:mm AM/PM" (case-insensitive), "HH:MM" and "HH:MM:SS".
// Calling it on its own output returns the same value.
func To24Hour(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrMalformedTime)
	}

	upper := strings.ToUpper(s)
	if strings.Contains(upper, "AM") || strings.Contains(upper, "PM") {
		return from12Hour(upper)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, input)
	}
	if len(parts) == 2 {
		parts = append(parts, "00")
	}

	limits := [3]int{23, 59, 59}
	var clock [3]int
	for i, p := range parts {
		if err := checkField(p, 0, limits[i]); err != nil {
			return "", err
		}
		clock[i], _ = strconv.Atoi(p)
	}
	return fmt.Sprintf("%02d:%02d:%02d", clock[0], clock[1], clock[2]), nil
}

// To12Hour renders a canonical "HH:MM:SS" time as "h:mm AM/PM".
// It is the inverse of To24Hour on To24Hour's output range.
func To12Hour(input string) (string, error) {
	parts := strings.Split(strings.TrimSpace(input), ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, input)
	}
	if err := checkField(parts[0], 0, 23); err != nil {
		return "", err
	}
	if err := checkField(parts[1], 0, 59); err != nil {
		return "", err
	}
	if err := checkField(parts[2], 0, 59); err != nil {
		return "", err
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	switch {
	case hours == 0:
		hours = 12
	case hours > 12:
		hours -= 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, minutes, ampm), nil
}

func from12Hour(upper string) (string, error) {
	fields := strings.Fields(upper)
	if len(fields) != 2 || (fields[1] != "AM" && fields[1] != "PM") {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, upper)
	}

	clock := strings.Split(fields[0], ":")
	if len(clock) != 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedTime, upper)
	}
	if err := checkField(clock[0], 1, 12); err != nil {
		return "", err
	}
	if err := checkField(clock[1], 0, 59); err != nil {
		return "", err
	}

	hours, _ := strconv.Atoi(clock[0])
	minutes, _ := strconv.Atoi(clock[1])
	if fields[1] == "AM" && hours == 12 {
		hours = 0
	} else if fields[1] == "PM" && hours != 12 {
		hours += 12
	}
	return fmt.Sprintf("%02d:%02d:00", hours, minutes), nil
}

func checkField(field string, min, max int) error {
	if field == "" || len(field) > 2 {
		return fmt.Errorf("%w: field %q", ErrMalformedTime, field)
	}
	n, err := strconv.Atoi(field)
	if err != nil || n < min || n > max {
		return fmt.Errorf("%w: field %q out of range", ErrMalformedTime, field)
	}
	return nil
}
